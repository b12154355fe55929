package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// ServerBindings maps protocols to protocol specific server information.
// Protocols without a typed binding are kept in Extensions.
type ServerBindings struct {
	Kafka *KafkaServerBinding `yaml:"kafka,omitempty"`
	MQTT  *MQTTServerBinding  `yaml:"mqtt,omitempty"`
	// MQTT5 is the deprecated MQTT 5 specific binding.
	MQTT5  *MQTTServerBinding   `yaml:"mqtt5,omitempty"`
	JMS    *JMSServerBinding    `yaml:"jms,omitempty"`
	Solace *SolaceServerBinding `yaml:"solace,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*ServerBindings)(nil)

func (b *ServerBindings) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("kafka", "kafka", b.Kafka),
		walk.Value("mqtt", "mqtt", b.MQTT),
		walk.Value("mqtt5", "mqtt5", b.MQTT5),
		walk.Value("jms", "jms", b.JMS),
		walk.Value("solace", "solace", b.Solace),
	}
}

func (b *ServerBindings) UnmarshalYAML(node *yaml.Node) error {
	type alias ServerBindings
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *ServerBindings) MarshalYAML() (any, error) {
	type alias ServerBindings
	return encodeModel((*alias)(b), b.Extensions)
}

// KafkaServerBinding holds Kafka specific server information.
type KafkaServerBinding struct {
	SchemaRegistryURL    string `yaml:"schemaRegistryUrl,omitempty"`
	SchemaRegistryVendor string `yaml:"schemaRegistryVendor,omitempty"`
	BindingVersion       string `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*KafkaServerBinding)(nil)

func (b *KafkaServerBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.String("schema_registry_url", "schemaRegistryUrl", b.SchemaRegistryURL),
		walk.String("schema_registry_vendor", "schemaRegistryVendor", b.SchemaRegistryVendor),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *KafkaServerBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias KafkaServerBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *KafkaServerBinding) MarshalYAML() (any, error) {
	type alias KafkaServerBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// MQTTServerBinding holds MQTT specific server information.
type MQTTServerBinding struct {
	// The client identifier.
	ClientID string `yaml:"clientId,omitempty"`
	// Whether to create a persistent connection or not.
	CleanSession *bool `yaml:"cleanSession,omitempty"`
	// Last Will and Testament configuration.
	LastWill *MQTTLastWill `yaml:"lastWill,omitempty"`
	// Interval in seconds of the longest period of time the broker and the client can endure without sending a message.
	KeepAlive *int `yaml:"keepAlive,omitempty"`
	// Interval in seconds, or a schema containing it, that the broker keeps the session after disconnection.
	SessionExpiryInterval *IntOrSchema `yaml:"sessionExpiryInterval,omitempty"`
	// Number of bytes, or a schema containing it, of the maximum packet size the client accepts.
	MaximumPacketSize *IntOrSchema `yaml:"maximumPacketSize,omitempty"`
	BindingVersion    string       `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*MQTTServerBinding)(nil)

func (b *MQTTServerBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.String("client_id", "clientId", b.ClientID),
		walk.Value("clean_session", "cleanSession", b.CleanSession),
		walk.Value("last_will", "lastWill", b.LastWill),
		walk.Value("keep_alive", "keepAlive", b.KeepAlive),
		walk.Value("session_expiry_interval", "sessionExpiryInterval", b.SessionExpiryInterval),
		walk.Value("maximum_packet_size", "maximumPacketSize", b.MaximumPacketSize),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *MQTTServerBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias MQTTServerBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *MQTTServerBinding) MarshalYAML() (any, error) {
	type alias MQTTServerBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// MQTTLastWill is the message a broker publishes when the client disconnects ungracefully.
type MQTTLastWill struct {
	Topic   string `yaml:"topic,omitempty"`
	QoS     *int   `yaml:"qos,omitempty"`
	Message string `yaml:"message,omitempty"`
	Retain  *bool  `yaml:"retain,omitempty"`
}

// JMSServerBinding holds JMS specific server information.
type JMSServerBinding struct {
	// The classname of the ConnectionFactory implementation for the JMS provider. Required.
	JMSConnectionFactory string `yaml:"jmsConnectionFactory"`
	// Additional properties to set on the JMS ConnectionFactory implementation.
	Properties []*Schema `yaml:"properties,omitempty"`
	// A client identifier for applications that use this JMS connection factory.
	ClientID       string `yaml:"clientID,omitempty"`
	BindingVersion string `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*JMSServerBinding)(nil)

func (b *JMSServerBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.String("jms_connection_factory", "jmsConnectionFactory", b.JMSConnectionFactory),
		walk.Slice("properties", "properties", b.Properties),
		walk.String("client_id", "clientID", b.ClientID),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *JMSServerBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias JMSServerBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *JMSServerBinding) MarshalYAML() (any, error) {
	type alias JMSServerBinding
	return encodeModel((*alias)(b), b.Extensions)
}

// SolaceServerBinding holds Solace specific server information.
type SolaceServerBinding struct {
	MsgVPN         string `yaml:"msgVpn,omitempty"`
	ClientName     string `yaml:"clientName,omitempty"`
	BindingVersion string `yaml:"bindingVersion,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*SolaceServerBinding)(nil)

func (b *SolaceServerBinding) Fields() []walk.Field {
	return []walk.Field{
		walk.String("msg_vpn", "msgVpn", b.MsgVPN),
		walk.String("client_name", "clientName", b.ClientName),
		walk.String("binding_version", "bindingVersion", b.BindingVersion),
	}
}

func (b *SolaceServerBinding) UnmarshalYAML(node *yaml.Node) error {
	type alias SolaceServerBinding
	return decodeModel(node, (*alias)(b), &b.Extensions, true)
}

func (b *SolaceServerBinding) MarshalYAML() (any, error) {
	type alias SolaceServerBinding
	return encodeModel((*alias)(b), b.Extensions)
}
