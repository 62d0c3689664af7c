package models

// EventStatus marks whether an event is still selling or archived.
type EventStatus string

const (
	EventUpcoming EventStatus = "upcoming"
	EventPast     EventStatus = "past"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventUpcoming, EventPast:
		return true
	}
	return false
}

// TicketType is a closed set of ticket tiers.
type TicketType string

const (
	TicketGeneral  TicketType = "general"
	TicketVIP      TicketType = "vip"
	TicketVVIP     TicketType = "vvip"
	TicketPlatinum TicketType = "platinum"
)

func (t TicketType) Valid() bool {
	switch t {
	case TicketGeneral, TicketVIP, TicketVVIP, TicketPlatinum:
		return true
	}
	return false
}

type ScheduleBlock struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Speaker     string `json:"speaker,omitempty"`
}

// TicketInfo is a purchasable tier. Available is display-only inventory;
// nothing ever decrements it.
type TicketInfo struct {
	Type      TicketType `json:"type"`
	Name      string     `json:"name"`
	Price     int64      `json:"price"`
	Benefits  []string   `json:"benefits"`
	Available int        `json:"available"`
}

type ScheduleBlocks []ScheduleBlock

type TicketInfos []TicketInfo

type Event struct {
	ID              string         `gorm:"primaryKey"      json:"id"`
	Title           string         `gorm:"not null"        json:"title"`
	Subtitle        string         `json:"subtitle"`
	Description     string         `json:"description"`
	LongDescription string         `json:"long_description"`
	Date            string         `gorm:"not null"        json:"date"`
	EndDate         string         `json:"end_date,omitempty"`
	Time            string         `json:"time"`
	Venue           string         `json:"venue"`
	Address         string         `json:"address"`
	City            string         `json:"city"`
	Image           string         `json:"image"`
	BannerImage     string         `json:"banner_image"`
	Status          EventStatus    `gorm:"index;not null"  json:"status"`
	Brand           Brand          `gorm:"index;not null"  json:"brand"`
	Category        string         `json:"category"`
	Schedule        ScheduleBlocks `gorm:"serializer:json" json:"schedule"`
	Tickets         TicketInfos    `gorm:"serializer:json" json:"tickets"`
	Featured        bool           `gorm:"index"           json:"featured"`
	MapURL          string         `json:"map_url"`
}

func (Event) TableName() string { return "events" }
