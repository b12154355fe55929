package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// ChannelBindings maps protocols to protocol specific channel information.
// Protocols without a typed binding are kept in Extensions.
type ChannelBindings struct {
	WS         *WebSocketsChannelBinding `yaml:"ws,omitempty"`
	Kafka      *KafkaChannelBinding      `yaml:"kafka,omitempty"`
	AMQP       *AMQPChannelBinding       `yaml:"amqp,omitempty"`
	JMS        *DestinationBinding       `yaml:"jms,omitempty"`
	AnypointMQ *DestinationBinding       `yaml:"anypointmq,omitempty"`
	SQS        *SQSChannelBinding        `yaml:"sqs,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*ChannelBindings)(nil)

func (b *ChannelBindings) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("ws", "ws", b.WS),
		walk.Value("kafka", "kafka", b.Kafka),
		walk.Value("amqp", "amqp", b.AMQP),
		walk.Value("jms", "jms", b.JMS),
		walk.Value("anypointmq", "anypointmq", b.AnypointMQ),
		walk.Value("sqs", "sqs", b.SQS),
	}
}

func (b *ChannelBindings) UnmarshalYAML(node *yaml.Node) error {
	type alias ChannelBindings
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *ChannelBindings) MarshalYAML() (any, error) {
	type alias ChannelBindings
	return encodeModel((*alias)(b), b.Extensions)
}

// WebSocketsChannelBinding describes the handshake of a WebSockets channel.
type WebSocketsChannelBinding struct {
	// The HTTP method to use when establishing the connection, GET or POST.
	Method string `yaml:"method,omitempty"`
	// A schema of type object describing the query parameters sent during the handshake.
	Query *ReferencedSchema `yaml:"query,omitempty"`
	// A schema of type object describing the headers sent during the handshake.
	Headers        *ReferencedSchema `yaml:"headers,omitempty"`
	BindingVersion string            `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*WebSocketsChannelBinding)(nil)

func (b *WebSocketsChannelBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.String("method", "method", b.Method),
		walk.Value("query", "query", b.Query),
		walk.Value("headers", "headers", b.Headers),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *WebSocketsChannelBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias WebSocketsChannelBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *WebSocketsChannelBinding) MarshalYAML() (any, error) {
	type alias WebSocketsChannelBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// KafkaChannelBinding describes the Kafka topic backing a channel.
type KafkaChannelBinding struct {
	Topic              string     `yaml:"topic,omitempty"`
	Partitions         *int       `yaml:"partitions,omitempty"`
	Replicas           *int       `yaml:"replicas,omitempty"`
	TopicConfiguration *yaml.Node `yaml:"topicConfiguration,omitempty"`
	BindingVersion     string     `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*KafkaChannelBinding)(nil)

func (b *KafkaChannelBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.String("topic", "topic", b.Topic),
		walk.Value("partitions", "partitions", b.Partitions),
		walk.Value("replicas", "replicas", b.Replicas),
		walk.Value("topic_configuration", "topicConfiguration", b.TopicConfiguration),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *KafkaChannelBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias KafkaChannelBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *KafkaChannelBinding) MarshalYAML() (any, error) {
	type alias KafkaChannelBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// AMQPChannelBinding describes the AMQP exchange or queue backing a channel.
type AMQPChannelBinding struct {
	// Defines what type of channel it is, routingKey or queue.
	Is             string        `yaml:"is,omitempty"`
	Exchange       *AMQPExchange `yaml:"exchange,omitempty"`
	Queue          *AMQPQueue    `yaml:"queue,omitempty"`
	BindingVersion string        `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*AMQPChannelBinding)(nil)

func (b *AMQPChannelBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.String("is", "is", b.Is),
		walk.Value("exchange", "exchange", b.Exchange),
		walk.Value("queue", "queue", b.Queue),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *AMQPChannelBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias AMQPChannelBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *AMQPChannelBinding) MarshalYAML() (any, error) {
	type alias AMQPChannelBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// AMQPExchange describes an AMQP exchange.
type AMQPExchange struct {
	Name       string `yaml:"name,omitempty"`
	Type       string `yaml:"type,omitempty"`
	Durable    *bool  `yaml:"durable,omitempty"`
	AutoDelete *bool  `yaml:"autoDelete,omitempty"`
	VHost      string `yaml:"vhost,omitempty"`
}

// AMQPQueue describes an AMQP queue.
type AMQPQueue struct {
	Name       string `yaml:"name,omitempty"`
	Durable    *bool  `yaml:"durable,omitempty"`
	Exclusive  *bool  `yaml:"exclusive,omitempty"`
	AutoDelete *bool  `yaml:"autoDelete,omitempty"`
	VHost      string `yaml:"vhost,omitempty"`
}

// DestinationBinding names the destination a channel maps to, as used by the JMS and Anypoint MQ bindings.
type DestinationBinding struct {
	Destination     string `yaml:"destination,omitempty"`
	DestinationType string `yaml:"destinationType,omitempty"`
	BindingVersion  string `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*DestinationBinding)(nil)

func (b *DestinationBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.String("destination", "destination", b.Destination),
		walk.String("destination_type", "destinationType", b.DestinationType),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *DestinationBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias DestinationBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *DestinationBinding) MarshalYAML() (any, error) {
	type alias DestinationBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// SQSChannelBinding describes the SQS queue backing a channel.
type SQSChannelBinding struct {
	Queue           *yaml.Node `yaml:"queue,omitempty"`
	DeadLetterQueue *yaml.Node `yaml:"deadLetterQueue,omitempty"`
	BindingVersion  string     `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*SQSChannelBinding)(nil)

func (b *SQSChannelBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("queue", "queue", b.Queue),
		walk.Value("dead_letter_queue", "deadLetterQueue", b.DeadLetterQueue),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *SQSChannelBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias SQSChannelBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *SQSChannelBinding) MarshalYAML() (any, error) {
	type alias SQSChannelBinding
	return encodeModel((*alias)(b), b.Extensions)
}
