// mediahub/models/validate.go
package models

import (
	"mediahub/config"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation rules are checked before any local or remote mutation is
// attempted. A failure here means nothing has changed anywhere.

func (c Category) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Name, validation.Required, validation.Length(1, config.MaxNameLen)),
	)
}

func (f Folder) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ID, validation.Required),
		validation.Field(&f.CategoryID, validation.Required),
		validation.Field(&f.Name, validation.Required, validation.Length(1, config.MaxNameLen)),
	)
}

func (f File) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ID, validation.Required),
		validation.Field(&f.FolderID, validation.Required),
		validation.Field(&f.CategoryID, validation.Required),
		validation.Field(&f.Name, validation.Required, validation.Length(1, config.MaxNameLen)),
		validation.Field(&f.URL, validation.Required),
		validation.Field(&f.Tags, validation.Length(0, config.MaxTagsLen)),
	)
}

func (i FeaturedItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ID, validation.Required),
		validation.Field(&i.Title, validation.Required, validation.Length(1, config.MaxTitleLen)),
		validation.Field(&i.URL, validation.Required),
		validation.Field(&i.Tags, validation.Length(0, config.MaxTagsLen)),
	)
}

func (s SliderImage) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.URL, validation.Required),
	)
}

func (a Announcement) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.Required),
		validation.Field(&a.Date, validation.Required),
		validation.Field(&a.Title, validation.Required, validation.Length(1, config.MaxTitleLen)),
		validation.Field(&a.Content, validation.Length(0, config.MaxContentLen)),
	)
}

func (m StaffMember) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.ID, validation.Required),
		validation.Field(&m.Name, validation.Required, validation.Length(1, config.MaxNameLen)),
		validation.Field(&m.Email, validation.Required, is.Email),
		validation.Field(&m.Password, validation.Required),
		validation.Field(&m.Level, validation.Min(config.LevelMember), validation.Max(config.LevelOwner)),
	)
}

func (s SiteSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.BrandName, validation.Required, validation.Length(1, config.MaxNameLen)),
	)
}
