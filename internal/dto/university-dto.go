package dto

type UniversityCreateRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Domain      string  `json:"domain,omitempty"`
	Description *string `json:"description,omitempty"`
	MaxStudents int     `json:"max_students,omitempty"`
}

type UniversityUpdateRequest struct {
	Name           *string `json:"name,omitempty"`
	Domain         *string `json:"domain,omitempty"`
	LogoURL        *string `json:"logo_url,omitempty"`
	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
	Description    *string `json:"description,omitempty"`
	MaxStudents    *int    `json:"max_students,omitempty"`
}
