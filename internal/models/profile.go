package models

// Profile holds the free-text pet profile fields. Age stays a string because
// the original app never validated it as a number.
type Profile struct {
	Breed  string `json:"breed"`
	Name   string `json:"name"`
	Age    string `json:"age"`
	Gender string `json:"gender"`
}
