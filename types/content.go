package types

// Exercise is a guided exercise in the content library.
type Exercise struct {
	ID                string   `firestore:"id" json:"id"`
	Title             string   `firestore:"title" json:"title"`
	Description       string   `firestore:"description" json:"description"`
	Duration          string   `firestore:"duration" json:"duration"`
	Category          string   `firestore:"category" json:"category"`
	VisualizationType string   `firestore:"visualizationType" json:"visualizationType"`
	Steps             []string `firestore:"steps" json:"steps"`
}

// Soundscape is an ambient audio track in the content library.
type Soundscape struct {
	ID   string `firestore:"id" json:"id"`
	Name string `firestore:"name" json:"name"`
	URL  string `firestore:"url" json:"url"`
}
