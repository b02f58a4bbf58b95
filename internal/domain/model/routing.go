package model

// Application identifies the workload and stage that own an AWS account.
type Application struct {
	Application string `json:"application"`
	Environment string `json:"environment"`
}

// AccountMapping maps an AWS account id to its application.
type AccountMapping map[string]Application

// ChannelRouting maps APPLICATION -> environment -> explicit channel name.
type ChannelRouting map[string]map[string]string

// Channel returns the explicit channel for the pair, if one is configured.
func (r ChannelRouting) Channel(application, environment string) (string, bool) {
	envChannels, ok := r[application]
	if !ok {
		return "", false
	}
	channel, ok := envChannels[environment]
	return channel, ok
}
