package validators

import (
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/internal/interfaces"
	"github.com/speakeasy-api/asyncapi/pathmatch"
	"github.com/speakeasy-api/asyncapi/references"
)

// Entry pairs a path pattern with the types a reference found at a matching path may resolve to.
type Entry struct {
	Pattern string
	Types   []reflect.Type

	segments    []string
	specificity pathmatch.Specificity
}

// Expect creates an entry accepting any of the given types at pattern.
func Expect(pattern string, types ...reflect.Type) Entry {
	segments := pathmatch.Split(pattern)
	return Entry{
		Pattern:     pattern,
		Types:       types,
		segments:    segments,
		specificity: pathmatch.SpecificityOfSegments(segments),
	}
}

// TypeOf returns the runtime type references to a T resolve to.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[*T]()
}

// Registry maps document positions that can hold a reference to the types the reference may resolve to.
// A Registry is immutable once created and safe for concurrent use.
type Registry struct {
	entries []Entry
}

// NewRegistry creates a registry from entries. When several patterns match a path the most specific one wins,
// and between equally specific patterns the one listed first wins.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		if e.segments == nil {
			e = Expect(e.Pattern, e.Types...)
		}
		e.Types = slices.Clone(e.Types)
		r.entries = append(r.entries, e)
	}
	return r
}

// Entries returns a copy of the registered entries in registration order.
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// ExpectedTypes returns the types accepted at path. The path is normalized with pathmatch.Normalize first.
// A path no pattern matches fails with ErrUnknownReferencePath.
func (r *Registry) ExpectedTypes(path string) ([]reflect.Type, error) {
	normalized := pathmatch.Normalize(path)
	segments := pathmatch.Split(normalized)

	var best *Entry
	for i := range r.entries {
		e := &r.entries[i]
		if !pathmatch.MatchesSegments(e.segments, segments) {
			continue
		}
		if best == nil || e.specificity.MoreSpecificThan(best.specificity) {
			best = e
		}
	}

	if best == nil {
		return nil, ErrUnknownReferencePath.Wrapf("no registered pattern matches %s", normalized)
	}
	return best.Types, nil
}

// Compatible reports whether actual is one of expected, or implements one of the interface types in expected.
func Compatible(actual reflect.Type, expected []reflect.Type) bool {
	for _, t := range expected {
		if actual == t {
			return true
		}
		if interfaces.Satisfies(actual, t) {
			return true
		}
	}
	return false
}

// FormatTypes renders a list of types as a union, for example "Schema | MultiFormatSchema".
func FormatTypes(types []reflect.Type) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, references.TypeName(t))
	}
	return strings.Join(names, " | ")
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	var (
		channel           = TypeOf[asyncapi.Channel]()
		channelBindings   = TypeOf[asyncapi.ChannelBindings]()
		correlationID     = TypeOf[asyncapi.CorrelationID]()
		externalDocs      = TypeOf[asyncapi.ExternalDocumentation]()
		message           = TypeOf[asyncapi.Message]()
		messageBindings   = TypeOf[asyncapi.MessageBindings]()
		messageTrait      = TypeOf[asyncapi.MessageTrait]()
		multiFormat       = TypeOf[asyncapi.MultiFormatSchema]()
		schema            = TypeOf[asyncapi.Schema]()
		operation         = TypeOf[asyncapi.Operation]()
		operationBindings = TypeOf[asyncapi.OperationBindings]()
		reply             = TypeOf[asyncapi.OperationReply]()
		replyAddress      = TypeOf[asyncapi.OperationReplyAddress]()
		operationTrait    = TypeOf[asyncapi.OperationTrait]()
		parameter         = TypeOf[asyncapi.Parameter]()
		securityScheme    = TypeOf[asyncapi.SecurityScheme]()
		server            = TypeOf[asyncapi.Server]()
		serverBindings    = TypeOf[asyncapi.ServerBindings]()
		serverVariable    = TypeOf[asyncapi.ServerVariable]()
		tag               = TypeOf[asyncapi.Tag]()
	)

	entries := []Entry{
		Expect("**.channel", channel),
		Expect("**.channels.*", channel),
		Expect("**.reply.channel", channel),
		Expect("**.channel_bindings.*", channelBindings),
		Expect("**.channels.*.bindings", channelBindings),
		Expect("**.correlation_id", correlationID),
		Expect("**.correlation_ids.*", correlationID),
		Expect("**.external_docs", externalDocs),
		Expect("**.external_docs.*", externalDocs),
		Expect("**.messages", message),
		Expect("**.messages.*", message),
		Expect("**.reply.messages", message),
		Expect("**.message_bindings.*", messageBindings),
		Expect("**.message_traits.*.bindings", messageBindings),
		Expect("**.messages.*.bindings", messageBindings),
		Expect("**.messages.*.traits.*.bindings", messageBindings),
		Expect("**.messages.*.traits.bindings", messageBindings),
		Expect("**.message_traits.*", messageTrait),
		Expect("**.messages.*.traits", messageTrait),
		Expect("**.messages.*.traits.*", messageTrait),
		Expect("**.message_traits.*.headers", schema, multiFormat),
		Expect("**.messages.*.headers", schema, multiFormat),
		Expect("**.messages.*.payload", schema, multiFormat),
		Expect("**.messages.*.traits.*.headers", schema, multiFormat),
		Expect("**.messages.*.traits.headers", schema, multiFormat),
		Expect("**.schemas.*", schema, multiFormat),
		Expect("**.operations.*", operation),
		Expect("**.operation_bindings.*", operationBindings),
		Expect("**.operation_traits.*.bindings", operationBindings),
		Expect("**.operations.*.bindings", operationBindings),
		Expect("**.operations.*.traits.*.bindings", operationBindings),
		Expect("**.operations.*.traits.bindings", operationBindings),
		Expect("**.replies.*", reply),
		Expect("**.reply", reply),
		Expect("**.replies.*.address", replyAddress),
		Expect("**.reply.address", replyAddress),
		Expect("**.reply_addresses.*", replyAddress),
		Expect("**.operation_traits.*", operationTrait),
		Expect("**.operations.*.traits", operationTrait),
		Expect("**.operations.*.traits.*", operationTrait),
		Expect("**.parameters.*", parameter),
	}

	// Schema positions inside protocol bindings, both inline under a bindings field and stored in components.
	for _, field := range []string{
		"client_id",
		"correlation_data",
		"group_id",
		"headers",
		"key",
		"maximum_packet_size",
		"message_expiry_interval",
		"priority",
		"query",
		"response_topic",
		"session_expiry_interval",
		"time_to_live",
	} {
		entries = append(entries,
			Expect("**.*_bindings.*.*."+field, schema),
			Expect("**.bindings.*."+field, schema),
		)
	}

	entries = append(entries,
		Expect("**.operations.*.traits.*.security.*", securityScheme),
		Expect("**.security", securityScheme),
		Expect("**.security.*", securityScheme),
		Expect("**.security_schemes.*", securityScheme),
		Expect("**.servers", server),
		Expect("**.servers.*", server),
		Expect("**.server_bindings.*", serverBindings),
		Expect("**.servers.*.bindings", serverBindings),
		Expect("**.server_variables.*", serverVariable),
		Expect("**.servers.*.variables.*", serverVariable),
		Expect("**.tags", tag),
		Expect("**.tags.*", tag),
	)

	return NewRegistry(entries...)
})

// DefaultRegistry returns the registry describing every reference position of an AsyncAPI 3 document.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
