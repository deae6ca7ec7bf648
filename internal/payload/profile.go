package payload

import "time"

// UpsertProfileRequest is the body of POST /api/profile. Status and skills are
// required; everything else is optional and absent fields are not touched on
// an existing profile.
type UpsertProfileRequest struct {
	Status         string  `json:"status" validate:"required"`
	Skills         string  `json:"skills" validate:"required"`
	Company        *string `json:"company"`
	Location       *string `json:"location"`
	Website        *string `json:"website"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Instagram      *string `json:"instagram"`
	Linkedin       *string `json:"linkedin"`
}

// ExperienceRequest is the body of PUT /api/profile/experience.
type ExperienceRequest struct {
	Title       string     `json:"title"   validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"    validate:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// EducationRequest is the body of PUT /api/profile/education.
type EducationRequest struct {
	School       string     `json:"school"       validate:"required"`
	Degree       string     `json:"degree"       validate:"required"`
	FieldOfStudy string     `json:"fieldofstudy" validate:"required"`
	From         time.Time  `json:"from"         validate:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// MessageResponse is a simple domain message body.
type MessageResponse struct {
	Msg string `json:"msg"`
}
