// Package observable provides the change-notification primitives every
// stateful value in the engine is built on. An Observable holds a set of
// Observer references and fans out Notify to them synchronously, in
// attachment order.
package observable

import "slices"

// Observer receives lifecycle and change notifications from an Observable.
type Observer interface {
	// OnAttach is called when the observer is registered with o.
	OnAttach(o Observable)
	// OnDetach is called when the observer is removed from o.
	OnDetach(o Observable)
	// OnNotify is called when the observed value changes.
	OnNotify()
}

// Observable is an entity observers can register with.
type Observable interface {
	Attach(observer Observer)
	Detach(observer Observer)
	Notify()
}

// Base is the canonical Observable implementation. Concrete observables embed
// it and call InitObservable with themselves so observers see the outer type.
//
// An observable holds no ownership over its observers: removal is always
// explicit via Detach, never implied by garbage collection.
type Base struct {
	self      Observable
	observers []Observer
}

// InitObservable records the outer observable passed to observer hooks.
func (b *Base) InitObservable(self Observable) {
	b.self = self
}

func (b *Base) observable() Observable {
	if b.self != nil {
		return b.self
	}
	return b
}

// Attach registers observer and invokes its OnAttach hook. Attaching the
// same observer twice registers it twice.
func (b *Base) Attach(observer Observer) {
	b.observers = append(b.observers, observer)
	observer.OnAttach(b.observable())
}

// Detach removes the first registration of observer and invokes its OnDetach
// hook. Detaching an observer that was never attached is a no-op.
func (b *Base) Detach(observer Observer) {
	for i, o := range b.observers {
		if o == observer {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			observer.OnDetach(b.observable())
			return
		}
	}
}

// Notify invokes OnNotify on every currently attached observer, synchronously
// and in attachment order. The observer list is snapshotted first, so an
// observer may detach itself (or others) during notification; such detaches
// take effect from the next Notify.
func (b *Base) Notify() {
	for _, o := range slices.Clone(b.observers) {
		o.OnNotify()
	}
}

// HasObserver reports whether observer is currently attached.
func (b *Base) HasObserver(observer Observer) bool {
	return slices.Contains(b.observers, observer)
}

// ObserverCount returns the number of attached observers.
func (b *Base) ObserverCount() int {
	return len(b.observers)
}

// OnUpdate attaches a callback-style listener that runs on every Notify.
func (b *Base) OnUpdate(callback func()) {
	b.Attach(NewUpdateListener(callback))
}

// UpdateListener adapts a plain callback to the Observer interface.
type UpdateListener struct {
	source   Observable
	callback func()
}

// NewUpdateListener returns a listener that invokes callback on each notify.
func NewUpdateListener(callback func()) *UpdateListener {
	return &UpdateListener{callback: callback}
}

// Source returns the observable the listener is currently attached to.
func (l *UpdateListener) Source() Observable { return l.source }

func (l *UpdateListener) OnAttach(o Observable) { l.source = o }

func (l *UpdateListener) OnDetach(o Observable) { l.source = nil }

func (l *UpdateListener) OnNotify() { l.callback() }
