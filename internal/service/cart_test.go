package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/infinity-lifestyle/storefront/internal/cart"
	"github.com/infinity-lifestyle/storefront/internal/models"
	"github.com/infinity-lifestyle/storefront/internal/repo"
)

const testSession = "test-session"

func newCartService(t *testing.T) *CartService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	// Fixed fixtures instead of the seeded generator keeps expected totals
	// literal in the assertions below.
	fixtures := []models.Product{
		{
			ID: "tshirt-nova-1", Name: "Nova Elite T-Shirt Edition",
			CategorySlug: "tshirt", Brand: models.BrandNova,
			OriginalPrice: 1400, DiscountedPrice: 1000, DiscountPercentage: 29,
			Sizes: models.ApparelSizes(), InStock: true,
		},
		{
			ID: "mug-xforce-1", Name: "X-Force Pro Mug Edition",
			CategorySlug: "mug", Brand: models.BrandXForce,
			OriginalPrice: 700, DiscountedPrice: 500, DiscountPercentage: 29,
			Sizes: models.Sizes{models.SizeOne}, InStock: true,
		},
	}
	require.NoError(t, db.Create(fixtures).Error)

	return &CartService{
		Store: cart.NewMemoryStore(),
		Repo:  repo.New(db),
	}
}

func requireUniqueLines(t *testing.T, v CartView) {
	t.Helper()
	seen := make(map[string]bool)
	for _, item := range v.Items {
		key := item.Product.ID + "/" + string(item.Size)
		require.False(t, seen[key], "duplicate line %s", key)
		seen[key] = true
		require.GreaterOrEqual(t, item.Quantity, 1)
	}
}

func TestAddToCartMergesSameProductAndSize(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	v, _, err := svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeM, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.TotalItems)
	require.Equal(t, int64(2000), v.TotalPrice)
	require.Len(t, v.Items, 1)

	v, _, err = svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeM, 1)
	require.NoError(t, err)
	require.Len(t, v.Items, 1, "same size must merge, not append")
	require.Equal(t, 3, v.Items[0].Quantity)
	require.Equal(t, 3, v.TotalItems)
	require.Equal(t, int64(3000), v.TotalPrice)

	v, _, err = svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeL, 1)
	require.NoError(t, err)
	require.Len(t, v.Items, 2, "different size is a distinct line")
	require.Equal(t, 4, v.TotalItems)
	require.Equal(t, int64(4000), v.TotalPrice)
	requireUniqueLines(t, v)
}

func TestAddToCartQuantitySumsOverRepeatedAdds(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	quantities := []int{1, 4, 2, 3}
	sum := 0
	for _, q := range quantities {
		_, _, err := svc.AddToCart(ctx, testSession, "mug-xforce-1", models.SizeOne, q)
		require.NoError(t, err)
		sum += q
	}

	v, err := svc.Get(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, v.Items, 1)
	require.Equal(t, sum, v.Items[0].Quantity)
	require.Equal(t, sum, v.TotalItems)
	require.Equal(t, int64(sum)*500, v.TotalPrice)
}

func TestAddToCartUsesDiscountedPrice(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	v, _, err := svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeS, 1)
	require.NoError(t, err)
	// 1000 discounted, never the 1400 original.
	require.Equal(t, int64(1000), v.TotalPrice)
	require.Equal(t, int64(1000), v.Items[0].Subtotal)
}

func TestAddToCartOpensDrawerAndNotice(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	v, notice, err := svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeM, 2)
	require.NoError(t, err)
	require.True(t, v.Open)
	require.Equal(t, "Added to cart: Nova Elite T-Shirt Edition (M) x2 - ৳2,000", notice)
}

func TestAddToCartValidation(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeM, 0)
	require.True(t, errors.Is(err, ErrValidation))

	_, _, err = svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeM, -3)
	require.True(t, errors.Is(err, ErrValidation))

	_, _, err = svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeOne, 1)
	require.True(t, errors.Is(err, ErrValidation), "size not offered by the product")

	_, _, err = svc.AddToCart(ctx, testSession, "no-such-product", models.SizeM, 1)
	require.True(t, errors.Is(err, ErrNotFound))

	v, err := svc.Get(ctx, testSession)
	require.NoError(t, err)
	require.Empty(t, v.Items, "failed adds must not touch the cart")
}

func TestUpdateQuantityReplaces(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeM, 2)
	require.NoError(t, err)

	v, err := svc.UpdateQuantity(ctx, testSession, "tshirt-nova-1", models.SizeM, 5)
	require.NoError(t, err)
	require.Equal(t, 5, v.Items[0].Quantity)
	require.Equal(t, int64(5000), v.TotalPrice)
}

func TestUpdateQuantityNonPositiveRemoves(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		t.Run(fmt.Sprintf("quantity_%d", quantity), func(t *testing.T) {
			svc := newCartService(t)
			ctx := context.Background()

			_, _, err := svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeM, 2)
			require.NoError(t, err)

			v, err := svc.UpdateQuantity(ctx, testSession, "tshirt-nova-1", models.SizeM, quantity)
			require.NoError(t, err)
			require.Empty(t, v.Items)
			require.Equal(t, 0, v.TotalItems)
			require.Equal(t, int64(0), v.TotalPrice)
		})
	}
}

func TestUpdateQuantityAbsentIsNoop(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.AddToCart(ctx, testSession, "mug-xforce-1", models.SizeOne, 1)
	require.NoError(t, err)

	v, err := svc.UpdateQuantity(ctx, testSession, "tshirt-nova-1", models.SizeM, 3)
	require.NoError(t, err)
	require.Len(t, v.Items, 1)
	require.Equal(t, "mug-xforce-1", v.Items[0].Product.ID)
	require.Equal(t, 1, v.Items[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeM, 2)
	require.NoError(t, err)
	_, _, err = svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeL, 1)
	require.NoError(t, err)

	v, err := svc.RemoveFromCart(ctx, testSession, "tshirt-nova-1", models.SizeM)
	require.NoError(t, err)
	require.Len(t, v.Items, 1)
	require.Equal(t, models.SizeL, v.Items[0].Size)
}

func TestRemoveFromCartAbsentIsNoop(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.AddToCart(ctx, testSession, "mug-xforce-1", models.SizeOne, 2)
	require.NoError(t, err)

	v, err := svc.RemoveFromCart(ctx, testSession, "no-such-product", models.SizeM)
	require.NoError(t, err)
	require.Len(t, v.Items, 1)
	require.Equal(t, 2, v.TotalItems)
}

func TestClearCart(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeM, 2)
	require.NoError(t, err)
	_, _, err = svc.AddToCart(ctx, testSession, "mug-xforce-1", models.SizeOne, 1)
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, testSession))

	v, err := svc.Get(ctx, testSession)
	require.NoError(t, err)
	require.Empty(t, v.Items)
	require.Equal(t, 0, v.TotalItems)
	require.Equal(t, int64(0), v.TotalPrice)
}

func TestUniqueLineInvariantUnderMutationSequence(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	steps := []func() error{
		func() error { _, _, err := svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeM, 2); return err },
		func() error { _, _, err := svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeM, 1); return err },
		func() error { _, _, err := svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeL, 4); return err },
		func() error { _, err := svc.UpdateQuantity(ctx, testSession, "tshirt-nova-1", models.SizeM, 1); return err },
		func() error { _, _, err := svc.AddToCart(ctx, testSession, "mug-xforce-1", models.SizeOne, 3); return err },
		func() error { _, err := svc.RemoveFromCart(ctx, testSession, "tshirt-nova-1", models.SizeL); return err },
		func() error { _, _, err := svc.AddToCart(ctx, testSession, "tshirt-nova-1", models.SizeM, 2); return err },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		v, err := svc.Get(ctx, testSession)
		require.NoError(t, err)
		requireUniqueLines(t, v)
	}

	v, err := svc.Get(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, v.Items, 2)
	require.Equal(t, 6, v.TotalItems)
	// tshirt M x3 at 1000 + mug x3 at 500
	require.Equal(t, int64(4500), v.TotalPrice)
}

func TestSessionsDoNotShareCarts(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.AddToCart(ctx, "session-a", "tshirt-nova-1", models.SizeM, 2)
	require.NoError(t, err)

	v, err := svc.Get(ctx, "session-b")
	require.NoError(t, err)
	require.Empty(t, v.Items)
}

func TestSetDrawer(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	_, _, err := svc.AddToCart(ctx, testSession, "mug-xforce-1", models.SizeOne, 1)
	require.NoError(t, err)

	v, err := svc.SetDrawer(ctx, testSession, false)
	require.NoError(t, err)
	require.False(t, v.Open)
	require.Len(t, v.Items, 1, "drawer flag must not touch lines")

	v, err = svc.SetDrawer(ctx, testSession, true)
	require.NoError(t, err)
	require.True(t, v.Open)
}
