package dto

import "time"

type CreateGigRequest struct {
	Title       string   `json:"title" validate:"required"`
	EventType   string   `json:"eventType"`
	Talents     []string `json:"talents"`
	MinPrice    *float64 `json:"minPrice"`
	MaxPrice    *float64 `json:"maxPrice"`
	Location    string   `json:"location"`
	Date        string   `json:"date" validate:"required"` // YYYY-MM-DD
	Time        string   `json:"time"`
	Description string   `json:"description"`
}

type CreateGigResponse struct {
	Message string `json:"message"`
	GigID   string `json:"gigId"`
}

type GigListQuery struct {
	Search    string `form:"search"`
	Location  string `form:"location"`
	EventType string `form:"eventType"`
	MinPrice  string `form:"minPrice"`
	MaxPrice  string `form:"maxPrice"`
}

// GigResponse keeps nullable columns as pointers so absent values serialize
// as JSON null, not zero values.
type GigResponse struct {
	ID                 string     `json:"id"`
	HostID             string     `json:"host_id"`
	Title              string     `json:"title"`
	Location           *string    `json:"location"`
	Date               *time.Time `json:"date"`
	Time               *string    `json:"time"`
	Description        *string    `json:"description"`
	MinPrice           *float64   `json:"minPrice"`
	MaxPrice           *float64   `json:"maxPrice"`
	SkillsNeeded       []string   `json:"skillsNeeded"`
	PostedDate         time.Time  `json:"postedDate"`
	HostName           string     `json:"hostName"`
	HostProfilePicture *string    `json:"hostProfilePicture"`
}

type GigListResponse struct {
	Message string        `json:"message"`
	Gigs    []GigResponse `json:"gigs"`
}

type GigDetailResponse struct {
	Message string      `json:"message"`
	Gig     GigResponse `json:"gig"`
}

type RespondToRequestRequest struct {
	Response string `json:"response" validate:"required,is-request-response"`
}
