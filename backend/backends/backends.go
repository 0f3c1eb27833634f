// Package backends imports all built-in queue backends for
// auto-registration. Import this package to have every backend registered
// with the default registry.
package backends

import (
	// Import all backends for side-effect registration.
	_ "github.com/relaymq/eventflow/backend/aws"
	_ "github.com/relaymq/eventflow/backend/kafka"
	_ "github.com/relaymq/eventflow/backend/memory"
	_ "github.com/relaymq/eventflow/backend/nats"
	_ "github.com/relaymq/eventflow/backend/rabbitmq"
	_ "github.com/relaymq/eventflow/backend/redis"
)
