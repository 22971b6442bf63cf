package model

// DashboardSettings shares its primary key with the dashboard it configures.
// A dashboard may exist without a settings row; reads fall back to
// DefaultSettings and the first write creates the row.
type DashboardSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TeamLabel      string `gorm:"size:100" json:"team_label"`
	NameLabel      string `gorm:"size:100" json:"name_label"`
	PresenceLabel  string `gorm:"size:100" json:"presence_label"`
	Note1Label     string `gorm:"size:100" json:"note1_label"`
	Note2Label     string `gorm:"size:100" json:"note2_label"`
	Note3Label     string `gorm:"size:100" json:"note3_label"`
	Check1Label    string `gorm:"size:100" json:"check1_label"`
	Check2Label    string `gorm:"size:100" json:"check2_label"`
	Check3Label    string `gorm:"size:100" json:"check3_label"`
	UpdatedAtLabel string `gorm:"size:100" json:"updated_at_label"`

	HideNote1     bool `json:"hide_note1"`
	HideNote2     bool `json:"hide_note2"`
	HideNote3     bool `json:"hide_note3"`
	HideCheck1    bool `json:"hide_check1"`
	HideCheck2    bool `json:"hide_check2"`
	HideCheck3    bool `json:"hide_check3"`
	HideUpdatedAt bool `json:"hide_updated_at"`

	TeamWidth      int `json:"team_width"`
	NameWidth      int `json:"name_width"`
	PresenceWidth  int `json:"presence_width"`
	Note1Width     int `json:"note1_width"`
	Note2Width     int `json:"note2_width"`
	Note3Width     int `json:"note3_width"`
	Check1Width    int `json:"check1_width"`
	Check2Width    int `json:"check2_width"`
	Check3Width    int `json:"check3_width"`
	UpdatedAtWidth int `json:"updated_at_width"`

	GridWidth  int    `json:"grid_width"`
	GridHeight int    `json:"grid_height"`
	Notes      string `json:"notes"`
}

// DefaultSettings is what clients see for a dashboard that has never been
// configured. Labels and widths match the grid's built-in fallbacks.
func DefaultSettings(id uint) DashboardSettings {
	return DashboardSettings{
		ID:             id,
		TeamLabel:      "Team",
		NameLabel:      "Name",
		PresenceLabel:  "Status",
		Note1Label:     "Note 1",
		Note2Label:     "Note 2",
		Note3Label:     "Note 3",
		Check1Label:    "Check 1",
		Check2Label:    "Check 2",
		Check3Label:    "Check 3",
		UpdatedAtLabel: "Last Updated",
		TeamWidth:      120,
		NameWidth:      100,
		PresenceWidth:  100,
		Note1Width:     100,
		Note2Width:     100,
		Note3Width:     100,
		Check1Width:    80,
		Check2Width:    80,
		Check3Width:    80,
		UpdatedAtWidth: 100,
		GridWidth:      460,
		GridHeight:     460,
		Notes:          "",
	}
}

type UpdateSettingsInput struct {
	TeamLabel      *string `json:"team_label" validate:"omitempty,max=100"`
	NameLabel      *string `json:"name_label" validate:"omitempty,max=100"`
	PresenceLabel  *string `json:"presence_label" validate:"omitempty,max=100"`
	Note1Label     *string `json:"note1_label" validate:"omitempty,max=100"`
	Note2Label     *string `json:"note2_label" validate:"omitempty,max=100"`
	Note3Label     *string `json:"note3_label" validate:"omitempty,max=100"`
	Check1Label    *string `json:"check1_label" validate:"omitempty,max=100"`
	Check2Label    *string `json:"check2_label" validate:"omitempty,max=100"`
	Check3Label    *string `json:"check3_label" validate:"omitempty,max=100"`
	UpdatedAtLabel *string `json:"updated_at_label" validate:"omitempty,max=100"`

	HideNote1     *bool `json:"hide_note1"`
	HideNote2     *bool `json:"hide_note2"`
	HideNote3     *bool `json:"hide_note3"`
	HideCheck1    *bool `json:"hide_check1"`
	HideCheck2    *bool `json:"hide_check2"`
	HideCheck3    *bool `json:"hide_check3"`
	HideUpdatedAt *bool `json:"hide_updated_at"`

	TeamWidth      *int `json:"team_width" validate:"omitempty,min=0"`
	NameWidth      *int `json:"name_width" validate:"omitempty,min=0"`
	PresenceWidth  *int `json:"presence_width" validate:"omitempty,min=0"`
	Note1Width     *int `json:"note1_width" validate:"omitempty,min=0"`
	Note2Width     *int `json:"note2_width" validate:"omitempty,min=0"`
	Note3Width     *int `json:"note3_width" validate:"omitempty,min=0"`
	Check1Width    *int `json:"check1_width" validate:"omitempty,min=0"`
	Check2Width    *int `json:"check2_width" validate:"omitempty,min=0"`
	Check3Width    *int `json:"check3_width" validate:"omitempty,min=0"`
	UpdatedAtWidth *int `json:"updated_at_width" validate:"omitempty,min=0"`

	GridWidth  *int    `json:"grid_width" validate:"omitempty,gt=0"`
	GridHeight *int    `json:"grid_height" validate:"omitempty,gt=0"`
	Notes      *string `json:"notes"`
}

// Updates builds the column map for a dynamic partial UPDATE. Only keys the
// client actually sent are touched, so single-field autosaves from two
// editors do not clobber each other's columns.
func (in *UpdateSettingsInput) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.TeamLabel != nil {
		updates["team_label"] = *in.TeamLabel
	}
	if in.NameLabel != nil {
		updates["name_label"] = *in.NameLabel
	}
	if in.PresenceLabel != nil {
		updates["presence_label"] = *in.PresenceLabel
	}
	if in.Note1Label != nil {
		updates["note1_label"] = *in.Note1Label
	}
	if in.Note2Label != nil {
		updates["note2_label"] = *in.Note2Label
	}
	if in.Note3Label != nil {
		updates["note3_label"] = *in.Note3Label
	}
	if in.Check1Label != nil {
		updates["check1_label"] = *in.Check1Label
	}
	if in.Check2Label != nil {
		updates["check2_label"] = *in.Check2Label
	}
	if in.Check3Label != nil {
		updates["check3_label"] = *in.Check3Label
	}
	if in.UpdatedAtLabel != nil {
		updates["updated_at_label"] = *in.UpdatedAtLabel
	}
	if in.HideNote1 != nil {
		updates["hide_note1"] = *in.HideNote1
	}
	if in.HideNote2 != nil {
		updates["hide_note2"] = *in.HideNote2
	}
	if in.HideNote3 != nil {
		updates["hide_note3"] = *in.HideNote3
	}
	if in.HideCheck1 != nil {
		updates["hide_check1"] = *in.HideCheck1
	}
	if in.HideCheck2 != nil {
		updates["hide_check2"] = *in.HideCheck2
	}
	if in.HideCheck3 != nil {
		updates["hide_check3"] = *in.HideCheck3
	}
	if in.HideUpdatedAt != nil {
		updates["hide_updated_at"] = *in.HideUpdatedAt
	}
	if in.TeamWidth != nil {
		updates["team_width"] = *in.TeamWidth
	}
	if in.NameWidth != nil {
		updates["name_width"] = *in.NameWidth
	}
	if in.PresenceWidth != nil {
		updates["presence_width"] = *in.PresenceWidth
	}
	if in.Note1Width != nil {
		updates["note1_width"] = *in.Note1Width
	}
	if in.Note2Width != nil {
		updates["note2_width"] = *in.Note2Width
	}
	if in.Note3Width != nil {
		updates["note3_width"] = *in.Note3Width
	}
	if in.Check1Width != nil {
		updates["check1_width"] = *in.Check1Width
	}
	if in.Check2Width != nil {
		updates["check2_width"] = *in.Check2Width
	}
	if in.Check3Width != nil {
		updates["check3_width"] = *in.Check3Width
	}
	if in.UpdatedAtWidth != nil {
		updates["updated_at_width"] = *in.UpdatedAtWidth
	}
	if in.GridWidth != nil {
		updates["grid_width"] = *in.GridWidth
	}
	if in.GridHeight != nil {
		updates["grid_height"] = *in.GridHeight
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	return updates
}
