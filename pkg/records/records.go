package records

import "github.com/dusksociety/dsm/pkg/optional"

// Record is a validated Brief, Creator, Subscriber or Work.
type Record interface {
	Kind() Kind
	// Collection is the document collection the record is stored in.
	Collection() string
}

// Brief is an incoming brand or artist brief.
type Brief struct {
	Type        BriefType                `json:"type" bson:"type"`
	Name        string                   `json:"name" bson:"name"`
	Email       string                   `json:"email" bson:"email"`
	Handle      optional.Value[string]   `json:"handle" bson:"handle"`
	Subject     string                   `json:"subject" bson:"subject"`
	Message     string                   `json:"message" bson:"message"`
	BudgetRange optional.Value[string]   `json:"budget_range" bson:"budget_range"`
	Timeline    optional.Value[string]   `json:"timeline" bson:"timeline"`
	References  optional.Value[[]string] `json:"references" bson:"references"`
}

func (Brief) Kind() Kind         { return KindBrief }
func (Brief) Collection() string { return KindBrief.Collection() }

// Creator is a creator recruitment application.
type Creator struct {
	Name       string                 `json:"name" bson:"name"`
	Email      string                 `json:"email" bson:"email"`
	City       optional.Value[string] `json:"city" bson:"city"`
	Discipline string                 `json:"discipline" bson:"discipline"`
	Portfolio  optional.Value[string] `json:"portfolio" bson:"portfolio"`
	Instagram  optional.Value[string] `json:"instagram" bson:"instagram"`
	Gear       optional.Value[string] `json:"gear" bson:"gear"`
	Bio        optional.Value[string] `json:"bio" bson:"bio"`
}

func (Creator) Kind() Kind         { return KindCreator }
func (Creator) Collection() string { return KindCreator.Collection() }

// Subscriber is an email list signup.
type Subscriber struct {
	Email  string                 `json:"email" bson:"email"`
	Source optional.Value[string] `json:"source" bson:"source"`
}

func (Subscriber) Kind() Kind         { return KindSubscriber }
func (Subscriber) Collection() string { return KindSubscriber.Collection() }

// Work is a showcase item.
type Work struct {
	Title string                   `json:"title" bson:"title"`
	Image string                   `json:"image" bson:"image"`
	Tags  optional.Value[[]string] `json:"tags" bson:"tags"`
	URL   optional.Value[string]   `json:"url" bson:"url"`
}

func (Work) Kind() Kind         { return KindWork }
func (Work) Collection() string { return KindWork.Collection() }
