package model

// User is an account in the system. The visit history lives beside the
// record in storage and is exposed through the store's visited operations,
// not on this struct.
type User struct {
	UserID    string `json:"userId"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Restaurant is a cached business record sourced from the search provider.
// Categories keeps the provider's comma-joined representation; callers parse
// it into a set at the service boundary.
type Restaurant struct {
	BusinessID  string  `json:"businessId"`
	Name        string  `json:"name"`
	Categories  string  `json:"categories"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	FullAddress string  `json:"fullAddress"`
	Stars       float64 `json:"stars"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"imageUrl"`
	URL         string  `json:"url"`
}

// DisplayRecord is a restaurant annotated with the requesting user's visited
// flag. It is derived per request and never persisted.
type DisplayRecord struct {
	Restaurant
	IsVisited bool `json:"isVisited"`
}
