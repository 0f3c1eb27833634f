package eventflow

import (
	backendpkg "github.com/relaymq/eventflow/backend"
	configpkg "github.com/relaymq/eventflow/config"
	consumerpkg "github.com/relaymq/eventflow/consumer"
	eventpkg "github.com/relaymq/eventflow/event"
	handlerpkg "github.com/relaymq/eventflow/handler"
	webhookpkg "github.com/relaymq/eventflow/webhook"
)

type (
	// Event payloads and routing.
	Event = eventpkg.Event

	// Queue backend contract.
	Backend         = backendpkg.Backend
	BackendBuilder  = backendpkg.Builder
	BackendConfig   = backendpkg.Config
	BackendRegistry = backendpkg.Registry
	Capabilities    = backendpkg.Capabilities
	Delivery        = backendpkg.Delivery

	ConfigurationError = backendpkg.ConfigurationError

	// Consumption lifecycle.
	Consumer      = consumerpkg.Consumer
	ConsumerState = consumerpkg.State

	// Dispatch.
	EventHandler  = handlerpkg.EventHandler
	Callback      = handlerpkg.Callback
	HandlerFunc   = handlerpkg.Func
	Mux           = handlerpkg.Mux
	Registry      = handlerpkg.Registry
	TracedHandler = handlerpkg.TracedHandler

	// Process configuration.
	Config = configpkg.Config

	// HTTP ingress.
	WebhookServer     = webhookpkg.Server
	SignatureVerifier = webhookpkg.SignatureVerifier
)

const (
	Wildcard    = eventpkg.Wildcard
	UnknownType = eventpkg.UnknownType

	StateIdle     = consumerpkg.StateIdle
	StateRunning  = consumerpkg.StateRunning
	StateStopping = consumerpkg.StateStopping

	DefaultEventsTopic = configpkg.DefaultEventsTopic
)

var (
	// Backend registry. Import individual backends via
	// _ "github.com/relaymq/eventflow/backend/memory" (etc.), or
	// _ "github.com/relaymq/eventflow/backend/backends" for all of them.
	DefaultBackendRegistry = backendpkg.DefaultRegistry
	RegisterBackend        = backendpkg.Register
	BuildBackend           = backendpkg.Build
	GetCapabilities        = backendpkg.DefaultRegistry.GetCapabilities

	ErrConfigRequired = backendpkg.ErrConfigRequired
	ErrQueueClosed    = backendpkg.ErrQueueClosed

	// Constructors.
	NewConsumer          = consumerpkg.New
	NewConsumerMetrics   = consumerpkg.NewMetrics
	NewMux               = handlerpkg.NewMux
	NewHandlerRegistry   = handlerpkg.NewRegistry
	NewTracedHandler     = handlerpkg.NewTracedHandler
	NewWebhookServer     = webhookpkg.New
	NewSignatureVerifier = webhookpkg.NewSignatureVerifier
	ConfigFromEnv        = configpkg.FromEnv

	// Routing helpers.
	EventKey    = eventpkg.Key
	MuxKey      = handlerpkg.MuxKey
	ResolveName = eventpkg.Resolve

	// Consumer options.
	WithGroup   = consumerpkg.WithGroup
	WithLogger  = consumerpkg.WithLogger
	WithMetrics = consumerpkg.WithMetrics

	// Dispatcher options.
	WithMuxLogger      = handlerpkg.WithMuxLogger
	WithRegistryLogger = handlerpkg.WithRegistryLogger
)
