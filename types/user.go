package types

// User represents an account stored in Firestore.
type User struct {
	ID                     string `firestore:"id" json:"id"`
	Email                  string `firestore:"email" json:"email"`
	PasswordHash           string `firestore:"passwordHash" json:"-"`
	Name                   string `firestore:"name" json:"name"`
	ProfilePic             string `firestore:"profilePic,omitempty" json:"profile_pic,omitempty"`
	Country                string `firestore:"country,omitempty" json:"country,omitempty"`
	EmergencyContactName   string `firestore:"emergencyContactName,omitempty" json:"emergency_contact_name,omitempty"`
	EmergencyContactNumber string `firestore:"emergencyContactNumber,omitempty" json:"emergency_contact_number,omitempty"`
	IsAdmin                bool   `firestore:"isAdmin" json:"is_admin"`
	CreatedAt              string `firestore:"createdAt" json:"created_at"`
}

type SignupRequest struct {
	Email                  string `json:"email" binding:"required"`
	Password               string `json:"password" binding:"required"`
	Name                   string `json:"name" binding:"required"`
	Country                string `json:"country"`
	EmergencyContactName   string `json:"emergency_contact_name"`
	EmergencyContactNumber string `json:"emergency_contact_number"`
	ProfilePic             string `json:"profile_pic"`
	IsAdmin                bool   `json:"is_admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
