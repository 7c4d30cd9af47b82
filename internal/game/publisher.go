package game

// Publisher delivers serialized events to subscribers of a subject.
type Publisher interface {
	Publish(subject string, data []byte) error
}
