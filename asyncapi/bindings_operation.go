package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// OperationBindings maps protocols to protocol specific operation information.
// Protocols without a typed binding are kept in Extensions.
type OperationBindings struct {
	HTTP   *HTTPOperationBinding   `yaml:"http,omitempty"`
	Kafka  *KafkaOperationBinding  `yaml:"kafka,omitempty"`
	AMQP   *AMQPOperationBinding   `yaml:"amqp,omitempty"`
	MQTT   *MQTTOperationBinding   `yaml:"mqtt,omitempty"`
	NATS   *NATSOperationBinding   `yaml:"nats,omitempty"`
	Solace *SolaceOperationBinding `yaml:"solace,omitempty"`
	SQS    *SQSOperationBinding    `yaml:"sqs,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*OperationBindings)(nil)

func (b *OperationBindings) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("http", "http", b.HTTP),
		walk.Value("kafka", "kafka", b.Kafka),
		walk.Value("amqp", "amqp", b.AMQP),
		walk.Value("mqtt", "mqtt", b.MQTT),
		walk.Value("nats", "nats", b.NATS),
		walk.Value("solace", "solace", b.Solace),
		walk.Value("sqs", "sqs", b.SQS),
	}
}

func (b *OperationBindings) UnmarshalYAML(node *yaml.Node) error {
	type alias OperationBindings
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *OperationBindings) MarshalYAML() (any, error) {
	type alias OperationBindings
	return encodeModel((*alias)(b), b.Extensions)
}

// HTTPOperationBinding describes an HTTP request.
type HTTPOperationBinding struct {
	// The HTTP method for the request.
	Method string `yaml:"method,omitempty"`
	// A schema of type object describing the query parameters.
	Query          *ReferencedSchema `yaml:"query,omitempty"`
	BindingVersion string            `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*HTTPOperationBinding)(nil)

func (b *HTTPOperationBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.String("method", "method", b.Method),
		walk.Value("query", "query", b.Query),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *HTTPOperationBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias HTTPOperationBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *HTTPOperationBinding) MarshalYAML() (any, error) {
	type alias HTTPOperationBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// KafkaOperationBinding describes the Kafka consumer identity of an operation.
type KafkaOperationBinding struct {
	GroupID        *ReferencedSchema `yaml:"groupId,omitempty"`
	ClientID       *ReferencedSchema `yaml:"clientId,omitempty"`
	BindingVersion string            `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*KafkaOperationBinding)(nil)

func (b *KafkaOperationBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("group_id", "groupId", b.GroupID),
		walk.Value("client_id", "clientId", b.ClientID),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *KafkaOperationBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias KafkaOperationBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *KafkaOperationBinding) MarshalYAML() (any, error) {
	type alias KafkaOperationBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// AMQPOperationBinding holds AMQP publish options.
type AMQPOperationBinding struct {
	Expiration     *int     `yaml:"expiration,omitempty"`
	UserID         string   `yaml:"userId,omitempty"`
	CC             []string `yaml:"cc,omitempty"`
	Priority       *int     `yaml:"priority,omitempty"`
	DeliveryMode   *int     `yaml:"deliveryMode,omitempty"`
	Mandatory      *bool    `yaml:"mandatory,omitempty"`
	BCC            []string `yaml:"bcc,omitempty"`
	Timestamp      *bool    `yaml:"timestamp,omitempty"`
	Ack            *bool    `yaml:"ack,omitempty"`
	BindingVersion string   `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*AMQPOperationBinding)(nil)

func (b *AMQPOperationBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("expiration", "expiration", b.Expiration),
		walk.String("user_id", "userId", b.UserID),
		walk.Slice("cc", "cc", b.CC),
		walk.Value("priority", "priority", b.Priority),
		walk.Value("delivery_mode", "deliveryMode", b.DeliveryMode),
		walk.Value("mandatory", "mandatory", b.Mandatory),
		walk.Slice("bcc", "bcc", b.BCC),
		walk.Value("timestamp", "timestamp", b.Timestamp),
		walk.Value("ack", "ack", b.Ack),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *AMQPOperationBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias AMQPOperationBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *AMQPOperationBinding) MarshalYAML() (any, error) {
	type alias AMQPOperationBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// MQTTOperationBinding holds MQTT publish options.
type MQTTOperationBinding struct {
	// Quality of Service level for the message flow between client and server.
	QoS *int `yaml:"qos,omitempty"`
	// Whether the broker should retain the message or not.
	Retain *bool `yaml:"retain,omitempty"`
	// Lifetime of the message in seconds, or a schema containing it.
	MessageExpiryInterval *IntOrSchema `yaml:"messageExpiryInterval,omitempty"`
	BindingVersion        string       `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*MQTTOperationBinding)(nil)

func (b *MQTTOperationBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("qos", "qos", b.QoS),
		walk.Value("retain", "retain", b.Retain),
		walk.Value("message_expiry_interval", "messageExpiryInterval", b.MessageExpiryInterval),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *MQTTOperationBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias MQTTOperationBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *MQTTOperationBinding) MarshalYAML() (any, error) {
	type alias MQTTOperationBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// NATSOperationBinding names the NATS queue group of a subscription.
type NATSOperationBinding struct {
	Queue          string `yaml:"queue,omitempty"`
	BindingVersion string `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*NATSOperationBinding)(nil)

func (b *NATSOperationBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.String("queue", "queue", b.Queue),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *NATSOperationBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias NATSOperationBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *NATSOperationBinding) MarshalYAML() (any, error) {
	type alias NATSOperationBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// SolaceOperationBinding lists the Solace destinations of an operation.
type SolaceOperationBinding struct {
	Destinations []*SolaceDestination `yaml:"destinations,omitempty"`
	// Interval in milliseconds, or a schema containing it, before the message is discarded.
	TimeToLive *IntOrSchema `yaml:"timeToLive,omitempty"`
	// Message priority, or a schema containing it.
	Priority       *IntOrSchema `yaml:"priority,omitempty"`
	DMQEligible    *bool        `yaml:"dmqEligible,omitempty"`
	BindingVersion string       `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*SolaceOperationBinding)(nil)

func (b *SolaceOperationBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.Slice("destinations", "destinations", b.Destinations),
		walk.Value("time_to_live", "timeToLive", b.TimeToLive),
		walk.Value("priority", "priority", b.Priority),
		walk.Value("dmq_eligible", "dmqEligible", b.DMQEligible),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *SolaceOperationBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias SolaceOperationBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *SolaceOperationBinding) MarshalYAML() (any, error) {
	type alias SolaceOperationBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// SolaceDestination is a queue or topic a Solace operation publishes to or consumes from.
type SolaceDestination struct {
	DestinationType string     `yaml:"destinationType,omitempty"`
	DeliveryMode    string     `yaml:"deliveryMode,omitempty"`
	Queue           *yaml.Node `yaml:"queue,omitempty"`
	Topic           *yaml.Node `yaml:"topic,omitempty"`
}

// SQSOperationBinding lists the SQS queues an operation uses.
type SQSOperationBinding struct {
	Queues         []*yaml.Node `yaml:"queues,omitempty"`
	BindingVersion string       `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*SQSOperationBinding)(nil)

func (b *SQSOperationBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.Slice("queues", "queues", b.Queues),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *SQSOperationBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias SQSOperationBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *SQSOperationBinding) MarshalYAML() (any, error) {
	type alias SQSOperationBinding
	return encodeModel((*alias)(b), b.Extensions)
}
