package model

// Message is a transport-agnostic health notification addressed to a channel.
type Message struct {
	Channel     string
	Description string
	DetailsURL  string
}
