package service

import "github.com/yogi-fashion/embroidery-service/internal/models"

// ChangeNotifier is told about every successful mutation so open views can
// refresh.
type ChangeNotifier interface {
	Notify(models.ChangeEvent)
}

// NopNotifier discards events.
type NopNotifier struct{}

func (NopNotifier) Notify(models.ChangeEvent) {}

func notifierOrNop(n ChangeNotifier) ChangeNotifier {
	if n == nil {
		return NopNotifier{}
	}
	return n
}
