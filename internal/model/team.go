package model

// TeamMember is a person shown on the team page. HierarchyLevel groups
// members into tiers (1 = founders), DisplayOrder sorts within a tier.
type TeamMember struct {
	ID             string `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Role           string `db:"role" json:"role"`
	Bio            string `db:"bio" json:"bio"`
	Specialization string `db:"specialization" json:"specialization"`
	PhotoURL       string `db:"photo_url" json:"photo_url"`
	HierarchyLevel int    `db:"hierarchy_level" json:"hierarchy_level"`
	DisplayOrder   int    `db:"display_order" json:"display_order"`
}

// TeamGroup is one hierarchy tier with its members in display order.
type TeamGroup struct {
	Level   int          `json:"level"`
	Members []TeamMember `json:"members"`
}
