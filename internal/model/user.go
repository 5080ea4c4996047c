package model

// User is the single signed-in identity on this device.
type User struct {
	ID       string
	Email    string
	FullName string
}
