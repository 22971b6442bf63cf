package model

import "time"

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DashboardID uint      `gorm:"not null;index" json:"dashboard_id"`
	Team        string    `gorm:"size:100" json:"team"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Presence    string    `gorm:"size:20;not null" json:"presence"`
	Note1       string    `json:"note1"`
	Note2       string    `json:"note2"`
	Note3       string    `json:"note3"`
	Check1      bool      `json:"check1"`
	Check2      bool      `json:"check2"`
	Check3      bool      `json:"check3"`
	X           int       `json:"x"`
	Y           int       `json:"y"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Order       int       `gorm:"column:order" json:"order"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateUserInput struct {
	Team     *string `json:"team" validate:"omitempty,max=100"`
	Name     string  `json:"name" validate:"required,max=100"`
	Presence string  `json:"presence" validate:"required,oneof=present remote trip off"`
	Note1    *string `json:"note1"`
	Note2    *string `json:"note2"`
	Note3    *string `json:"note3"`
	Check1   *bool   `json:"check1"`
	Check2   *bool   `json:"check2"`
	Check3   *bool   `json:"check3"`
	X        *int    `json:"x"`
	Y        *int    `json:"y"`
	Width    *int    `json:"width" validate:"omitempty,gt=0"`
	Height   *int    `json:"height" validate:"omitempty,gt=0"`
	Order    *int    `json:"order"`
}

type UpdateUserInput struct {
	Team     *string `json:"team" validate:"omitempty,max=100"`
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Presence *string `json:"presence" validate:"omitempty,oneof=present remote trip off"`
	Note1    *string `json:"note1"`
	Note2    *string `json:"note2"`
	Note3    *string `json:"note3"`
	Check1   *bool   `json:"check1"`
	Check2   *bool   `json:"check2"`
	Check3   *bool   `json:"check3"`
	X        *int    `json:"x"`
	Y        *int    `json:"y"`
	Width    *int    `json:"width" validate:"omitempty,gt=0"`
	Height   *int    `json:"height" validate:"omitempty,gt=0"`
	Order    *int    `json:"order"`
}

// Updates builds the column map for a dynamic partial UPDATE; keys the
// client did not send stay untouched.
func (in *UpdateUserInput) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Team != nil {
		updates["team"] = *in.Team
	}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Presence != nil {
		updates["presence"] = *in.Presence
	}
	if in.Note1 != nil {
		updates["note1"] = *in.Note1
	}
	if in.Note2 != nil {
		updates["note2"] = *in.Note2
	}
	if in.Note3 != nil {
		updates["note3"] = *in.Note3
	}
	if in.Check1 != nil {
		updates["check1"] = *in.Check1
	}
	if in.Check2 != nil {
		updates["check2"] = *in.Check2
	}
	if in.Check3 != nil {
		updates["check3"] = *in.Check3
	}
	if in.X != nil {
		updates["x"] = *in.X
	}
	if in.Y != nil {
		updates["y"] = *in.Y
	}
	if in.Width != nil {
		updates["width"] = *in.Width
	}
	if in.Height != nil {
		updates["height"] = *in.Height
	}
	if in.Order != nil {
		updates["order"] = *in.Order
	}
	return updates
}
