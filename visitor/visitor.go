package visitor

// Visitor iterates over pairs of (key, element), calling the provided
// callback for each pair. If the callback returns (false, nil), iteration
// stops. If the callback returns an error, iteration stops and the error
// is returned.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
