package model

import (
	"fmt"
	"sync"
)

// A Factory creates a live instance of one packaged model. The instance
// name distinguishes multiple instances of the same model in one process.
type Factory func(instanceName string) Instance

var factoryMutex sync.RWMutex
var factories = map[string]Factory{}

// RegisterFactory registers the executable implementation of a model under
// its bundle model identifier. Registering the same identifier twice
// panics.
func RegisterFactory(identifier string, f Factory) {
	factoryMutex.Lock()
	defer factoryMutex.Unlock()

	if _, found := factories[identifier]; found {
		panic(fmt.Sprintf("model %s already registered", identifier))
	}

	factories[identifier] = f
}

func lookupFactory(identifier string) (Factory, bool) {
	factoryMutex.RLock()
	defer factoryMutex.RUnlock()

	f, found := factories[identifier]
	return f, found
}
