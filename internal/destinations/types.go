package destinations

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelshowcase/internal/cards"
)

// Destination is one showcase entry as stored in the catalog.
type Destination struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-" yaml:"-"`
	Position    int                `bson:"position" json:"index" yaml:"-"`
	Title       string             `bson:"title" json:"title" yaml:"title" validate:"required"`
	Category    string             `bson:"category" json:"category" yaml:"category" validate:"required,lowercase,ne=all"`
	Description string             `bson:"description" json:"description" yaml:"description"` // markdown
	Schedule    string             `bson:"schedule,omitempty" json:"schedule,omitempty" yaml:"schedule"`
	TimeZone    string             `bson:"time_zone,omitempty" json:"timeZone,omitempty" yaml:"time_zone" validate:"omitempty,timezone"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty" yaml:"image"`
	Link        string             `bson:"link,omitempty" json:"link,omitempty" yaml:"link" validate:"omitempty,url"`
}

// Raw converts the destination into the card source shape.
func (d *Destination) Raw() cards.RawCard {
	return cards.RawCard{
		Title:       d.Title,
		Category:    d.Category,
		Description: d.Description,
		Schedule:    d.Schedule,
	}
}

// Category is a category key with the number of destinations using it.
type Category struct {
	Name  string `bson:"_id" json:"name"`
	Label string `bson:"-" json:"label"`
	Count int64  `bson:"count" json:"count"`
}

// BrowseQuery is one stateless view request. Empty fields take the
// defaults of a fresh view: every category, no query, relevance order,
// first page.
type BrowseQuery struct {
	Filter  string
	Query   string
	Sort    string
	Visible int
}

// BrowseResult is a computed view together with the destinations behind
// the shown cards.
type BrowseResult struct {
	cards.Result

	Buttons      []cards.Button
	Destinations []*Destination

	// NextVisible is the visible count a load-more request should ask for.
	NextVisible int
}

type catalogFile struct {
	Destinations []*Destination `yaml:"destinations"`
}
