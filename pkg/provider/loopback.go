package provider

// Receiver accepts encoded messages from a provider; *consumer.Consumer
// implements it.
type Receiver interface {
	HandleMessage(data []byte) error
}

// Loopback is a consumer transport that hands every request to a Provider
// in the same process and delivers the response before Send returns.
type Loopback struct {
	Provider *Provider
	Consumer Receiver
}

// Send answers data and feeds the response to the consumer.
func (l *Loopback) Send(data []byte) error {
	resp, err := l.Provider.Handle(data)
	if err != nil {
		return err
	}
	return l.Consumer.HandleMessage(resp)
}

// Notify feeds an unsolicited message, such as a SetValue notification, to
// the consumer.
func (l *Loopback) Notify(data []byte) error {
	return l.Consumer.HandleMessage(data)
}
