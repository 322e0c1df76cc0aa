package models

// User is the mock session profile. The JSON shape is also the persisted
// format under the session storage key.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	EmailOrPhone string   `json:"emailOrPhone"`
	Avatar       *string  `json:"avatar,omitempty"`
	Height       *float64 `json:"height,omitempty"` // cm
	Weight       *float64 `json:"weight,omitempty"` // kg
	Size         *string  `json:"size,omitempty"`
}

// UserUpdate is a partial profile; nil fields are left untouched.
type UserUpdate struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=100"`
	EmailOrPhone *string  `json:"emailOrPhone" validate:"omitempty,min=1,max=200"`
	Avatar       *string  `json:"avatar" validate:"omitempty,max=100000"`
	Height       *float64 `json:"height" validate:"omitempty,gt=0"`
	Weight       *float64 `json:"weight" validate:"omitempty,gt=0"`
	Size         *string  `json:"size" validate:"omitempty,max=20"`
}

// Apply merges the update into a copy of u.
func (upd UserUpdate) Apply(u User) User {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.EmailOrPhone != nil {
		u.EmailOrPhone = *upd.EmailOrPhone
	}
	if upd.Avatar != nil {
		u.Avatar = upd.Avatar
	}
	if upd.Height != nil {
		u.Height = upd.Height
	}
	if upd.Weight != nil {
		u.Weight = upd.Weight
	}
	if upd.Size != nil {
		u.Size = upd.Size
	}
	return u
}
