package models

type Subscription string

const (
	Free  Subscription = "free" // limited wardrobe size
	Trial Subscription = "trial"
	Pro   Subscription = "pro"
)

func (l *Subscription) Scan(value interface{}) error {
	*l = Subscription(value.(string))
	return nil
}

func (l Subscription) Value() (string, error) {
	return string(l), nil
}
