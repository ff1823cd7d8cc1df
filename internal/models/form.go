package models

// GoalType is one of the six goal ids.
type GoalType string

const (
	GoalAwareness GoalType = "awareness"
	GoalLaunch    GoalType = "launch"
	GoalSales     GoalType = "sales"
	GoalUGC       GoalType = "ugc"
	GoalEvent     GoalType = "event"
	GoalCommunity GoalType = "community"
)

// Goals lists every goal id in display order.
var Goals = []GoalType{GoalAwareness, GoalLaunch, GoalSales, GoalUGC, GoalEvent, GoalCommunity}

var goalLabels = map[GoalType]string{
	GoalAwareness: "Brand Awareness",
	GoalLaunch:    "Product Launch",
	GoalSales:     "Drive Sales",
	GoalUGC:       "Generate UGC",
	GoalEvent:     "Event Promotion",
	GoalCommunity: "Build Community",
}

// Label returns the display label, or the raw id when unknown.
func (g GoalType) Label() string {
	if l, ok := goalLabels[g]; ok {
		return l
	}
	return string(g)
}

func (g GoalType) Valid() bool {
	_, ok := goalLabels[g]
	return ok
}

// FormData holds the onboarding answers.
type FormData struct {
	BusinessName        string   `json:"businessName"`
	Industry            string   `json:"industry"`
	Location            string   `json:"location"`
	Reach               string   `json:"reach"`
	HasWebsite          *bool    `json:"hasWebsite"`
	WebsiteURL          string   `json:"websiteUrl"`
	BusinessDescription string   `json:"businessDescription"`
	Goal                GoalType `json:"goal"`
	GoalDescription     string   `json:"goalDescription"`
	RefinedGoal         string   `json:"refinedGoal"`
}

// Clone returns a deep copy.
func (f FormData) Clone() FormData {
	if f.HasWebsite != nil {
		v := *f.HasWebsite
		f.HasWebsite = &v
	}
	return f
}
