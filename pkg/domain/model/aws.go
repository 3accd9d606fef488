package model

// AWSConfig is the resolved AWS connectivity settings. It is built once at
// startup and passed by value to whatever needs a client.
type AWSConfig struct {
	Region   string
	Endpoint string
	QueueURL string
}
