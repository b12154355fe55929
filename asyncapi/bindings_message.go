package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// MessageBindings maps protocols to protocol specific message information.
// Protocols without a typed binding are kept in Extensions.
type MessageBindings struct {
	HTTP       *HTTPMessageBinding    `yaml:"http,omitempty"`
	Kafka      *KafkaMessageBinding   `yaml:"kafka,omitempty"`
	AMQP       *AMQPMessageBinding    `yaml:"amqp,omitempty"`
	MQTT       *MQTTMessageBinding    `yaml:"mqtt,omitempty"`
	JMS        *HeadersMessageBinding `yaml:"jms,omitempty"`
	AnypointMQ *HeadersMessageBinding `yaml:"anypointmq,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*MessageBindings)(nil)

func (b *MessageBindings) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("http", "http", b.HTTP),
		walk.Value("kafka", "kafka", b.Kafka),
		walk.Value("amqp", "amqp", b.AMQP),
		walk.Value("mqtt", "mqtt", b.MQTT),
		walk.Value("jms", "jms", b.JMS),
		walk.Value("anypointmq", "anypointmq", b.AnypointMQ),
	}
}

func (b *MessageBindings) UnmarshalYAML(node *yaml.Node) error {
	type alias MessageBindings
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *MessageBindings) MarshalYAML() (any, error) {
	type alias MessageBindings
	return encodeModel((*alias)(b), b.Extensions)
}

// HTTPMessageBinding describes the headers and status code of an HTTP message.
type HTTPMessageBinding struct {
	// A schema of type object describing the HTTP headers.
	Headers *ReferencedSchema `yaml:"headers,omitempty"`
	// The HTTP response status code of a response message.
	StatusCode     *int   `yaml:"statusCode,omitempty"`
	BindingVersion string `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*HTTPMessageBinding)(nil)

func (b *HTTPMessageBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("headers", "headers", b.Headers),
		walk.Value("status_code", "statusCode", b.StatusCode),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *HTTPMessageBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias HTTPMessageBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *HTTPMessageBinding) MarshalYAML() (any, error) {
	type alias HTTPMessageBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// KafkaMessageBinding describes the key and schema id handling of a Kafka message.
type KafkaMessageBinding struct {
	// The message key, as a schema.
	Key                     *ReferencedSchema `yaml:"key,omitempty"`
	SchemaIDLocation        string            `yaml:"schemaIdLocation,omitempty"`
	SchemaIDPayloadEncoding string            `yaml:"schemaIdPayloadEncoding,omitempty"`
	SchemaLookupStrategy    string            `yaml:"schemaLookupStrategy,omitempty"`
	BindingVersion          string            `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*KafkaMessageBinding)(nil)

func (b *KafkaMessageBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("key", "key", b.Key),
		walk.String("schema_id_location", "schemaIdLocation", b.SchemaIDLocation),
		walk.String("schema_id_payload_encoding", "schemaIdPayloadEncoding", b.SchemaIDPayloadEncoding),
		walk.String("schema_lookup_strategy", "schemaLookupStrategy", b.SchemaLookupStrategy),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *KafkaMessageBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias KafkaMessageBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *KafkaMessageBinding) MarshalYAML() (any, error) {
	type alias KafkaMessageBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// AMQPMessageBinding holds AMQP message properties.
type AMQPMessageBinding struct {
	ContentEncoding string `yaml:"contentEncoding,omitempty"`
	MessageType     string `yaml:"messageType,omitempty"`
	BindingVersion  string `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*AMQPMessageBinding)(nil)

func (b *AMQPMessageBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.String("content_encoding", "contentEncoding", b.ContentEncoding),
		walk.String("message_type", "messageType", b.MessageType),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *AMQPMessageBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias AMQPMessageBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *AMQPMessageBinding) MarshalYAML() (any, error) {
	type alias AMQPMessageBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// MQTTMessageBinding holds MQTT 5 message properties.
type MQTTMessageBinding struct {
	// Either 0 for unspecified bytes or 1 for UTF-8 encoded character data.
	PayloadFormatIndicator *int `yaml:"payloadFormatIndicator,omitempty"`
	// Correlation data used to identify the request the response message is for.
	CorrelationData *ReferencedSchema `yaml:"correlationData,omitempty"`
	// String describing the content type of the message payload.
	ContentType string `yaml:"contentType,omitempty"`
	// Topic name, or a schema containing it, for a response message.
	ResponseTopic  *StringOrSchema `yaml:"responseTopic,omitempty"`
	BindingVersion string          `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*MQTTMessageBinding)(nil)

func (b *MQTTMessageBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("payload_format_indicator", "payloadFormatIndicator", b.PayloadFormatIndicator),
		walk.Value("correlation_data", "correlationData", b.CorrelationData),
		walk.String("content_type", "contentType", b.ContentType),
		walk.Value("response_topic", "responseTopic", b.ResponseTopic),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *MQTTMessageBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias MQTTMessageBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *MQTTMessageBinding) MarshalYAML() (any, error) {
	type alias MQTTMessageBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// HeadersMessageBinding carries a headers schema, as used by the JMS and Anypoint MQ bindings.
type HeadersMessageBinding struct {
	Headers        *ReferencedSchema `yaml:"headers,omitempty"`
	BindingVersion string            `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*HeadersMessageBinding)(nil)

func (b *HeadersMessageBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("headers", "headers", b.Headers),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *HeadersMessageBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias HeadersMessageBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *HeadersMessageBinding) MarshalYAML() (any, error) {
	type alias HeadersMessageBinding
	return encodeModel((*alias)(b), b.Extensions)
}
