package asyncapi

import (
	"net/url"
	"regexp"

	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

var patternedKey = regexp.MustCompile(`^[A-Za-z0-9_\-]+$`)

// Builder assembles a Document step by step.
// Entities are always stored in components and exposed at the root through references.
// The first failing step is remembered, later steps are skipped and Build reports it.
type Builder struct {
	doc *Document
	err error
}

// NewBuilder creates a builder for a document with the provided info title and version.
func NewBuilder(title, version string) *Builder {
	return &Builder{
		doc: &Document{
			AsyncAPI: Version,
			Info: &Info{
				Title:   title,
				Version: version,
			},
		},
	}
}

// Build returns the document, or the first error encountered while building it.
func (b *Builder) Build() (*Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.doc, nil
}

// InfoOptions updates the fields of the info object. Nil fields are left unchanged.
type InfoOptions struct {
	Title          *string
	Version        *string
	Description    *string
	TermsOfService *string
	Contact        *Contact
	License        *License
	Tags           []*ReferencedTag
	ExternalDocs   *ReferencedExternalDocumentation
}

// UpdateInfo updates the info object with the fields set in opts.
func (b *Builder) UpdateInfo(opts InfoOptions) *Builder {
	if b.err != nil {
		return b
	}

	info := b.doc.Info
	setIfSet(&info.Title, opts.Title)
	setIfSet(&info.Version, opts.Version)
	setIfSet(&info.Description, opts.Description)
	setIfSet(&info.TermsOfService, opts.TermsOfService)
	setPtrIfSet(&info.Contact, opts.Contact)
	setPtrIfSet(&info.License, opts.License)
	setPtrIfSet(&info.ExternalDocs, opts.ExternalDocs)
	if opts.Tags != nil {
		info.Tags = opts.Tags
	}
	return b
}

// UpdateID sets the document identifier, which must be an absolute URI such as a URN. An empty id removes it.
func (b *Builder) UpdateID(id string) *Builder {
	if b.err != nil {
		return b
	}

	if id == "" {
		b.doc.ID = ""
		return b
	}

	u, err := url.Parse(id)
	if err != nil || !u.IsAbs() {
		b.err = ErrInvalidID.Wrapf("%q must be an absolute URI, for example urn:example:orders or https://example.com/api", id)
		return b
	}

	b.doc.ID = id
	return b
}

// UpdateDefaultContentType sets the default content type of message payloads. An empty value removes it.
func (b *Builder) UpdateDefaultContentType(contentType string) *Builder {
	if b.err == nil {
		b.doc.DefaultContentType = contentType
	}
	return b
}

// ServerOptions updates the fields of a server. Nil fields are left unchanged.
type ServerOptions struct {
	Host            *string
	Protocol        *string
	ProtocolVersion *string
	Pathname        *string
	Description     *string
	Title           *string
	Summary         *string
	Variables       *sequencedmap.Map[string, *ReferencedServerVariable]
	Security        []*ReferencedSecurityScheme
	Tags            []*ReferencedTag
	ExternalDocs    *ReferencedExternalDocumentation
	Bindings        *ReferencedServerBindings
}

// UpdateOrCreateServer creates or updates the server stored in components.servers under name.
// Host and protocol are required when the server does not exist yet. When root is set a reference to the server is
// added to the root servers, otherwise any root reference is removed.
func (b *Builder) UpdateOrCreateServer(name string, opts ServerOptions, root bool) *Builder {
	if !b.checkKey(name, "server") {
		return b
	}

	components := b.doc.EnsureComponents()
	components.Servers = sequencedmap.Ensure(components.Servers)

	entry, ok := components.Servers.Get(name)
	if !ok {
		if opts.Host == nil || opts.Protocol == nil {
			b.err = ErrMissingRequired.Wrapf("cannot create server %q: both host and protocol are required when creating a server", name)
			return b
		}
		entry = NewReferenceFromObject(&Server{})
	}
	if entry.IsReference() {
		b.err = ErrStoredAsReference.Wrapf("server %q is stored as reference %s, remove the reference first", name, entry.GetReference())
		return b
	}

	server := entry.GetObject()
	setIfSet(&server.Host, opts.Host)
	setIfSet(&server.Protocol, opts.Protocol)
	setIfSet(&server.ProtocolVersion, opts.ProtocolVersion)
	setIfSet(&server.Pathname, opts.Pathname)
	setIfSet(&server.Description, opts.Description)
	setIfSet(&server.Title, opts.Title)
	setIfSet(&server.Summary, opts.Summary)
	setPtrIfSet(&server.Variables, opts.Variables)
	setPtrIfSet(&server.ExternalDocs, opts.ExternalDocs)
	setPtrIfSet(&server.Bindings, opts.Bindings)
	if opts.Security != nil {
		server.Security = opts.Security
	}
	if opts.Tags != nil {
		server.Tags = opts.Tags
	}

	components.Servers.Set(name, entry)

	if root {
		return b.AddRootServerAsRef(name)
	}
	return b.RemoveRootServer(name, false)
}

// AddRootServerAsRef adds a reference to the components server name to the root servers.
func (b *Builder) AddRootServerAsRef(name string) *Builder {
	if !b.checkKey(name, "server") {
		return b
	}
	if !b.doc.GetComponents().GetServers().Has(name) {
		b.err = ErrNotFound.Wrapf("cannot add server %q to root servers: it does not exist in components.servers", name)
		return b
	}

	b.doc.Servers = sequencedmap.Ensure(b.doc.Servers)
	b.doc.Servers.Set(name, NewReferenceFromRef[Server](ToComponentServer(name)))
	return b
}

// RemoveRootServer removes name from the root servers, and from components.servers when cascade is set.
func (b *Builder) RemoveRootServer(name string, cascade bool) *Builder {
	if !b.checkKey(name, "server") {
		return b
	}

	removeEntry(&b.doc.Servers, name)
	if cascade && b.doc.Components != nil {
		removeEntry(&b.doc.Components.Servers, name)
	}
	return b
}

// ChannelOptions updates the fields of a channel. Nil fields are left unchanged.
type ChannelOptions struct {
	Address      *string
	Title        *string
	Summary      *string
	Description  *string
	Servers      []*ReferencedServer
	Parameters   *sequencedmap.Map[string, *ReferencedParameter]
	Tags         []*ReferencedTag
	ExternalDocs *ReferencedExternalDocumentation
	Bindings     *ReferencedChannelBindings
	Messages     *sequencedmap.Map[string, *ReferencedMessage]
}

// UpdateOrCreateChannel creates or updates the channel stored in components.channels under name.
// When root is set a reference to the channel is added to the root channels, otherwise any root reference is removed.
func (b *Builder) UpdateOrCreateChannel(name string, opts ChannelOptions, root bool) *Builder {
	if !b.checkKey(name, "channel") {
		return b
	}

	components := b.doc.EnsureComponents()
	components.Channels = sequencedmap.Ensure(components.Channels)

	entry, ok := components.Channels.Get(name)
	if !ok {
		entry = NewReferenceFromObject(&Channel{})
	}
	if entry.IsReference() {
		b.err = ErrStoredAsReference.Wrapf("channel %q is stored as reference %s, remove the reference first", name, entry.GetReference())
		return b
	}

	channel := entry.GetObject()
	setPtrIfSet(&channel.Address, opts.Address)
	setIfSet(&channel.Title, opts.Title)
	setIfSet(&channel.Summary, opts.Summary)
	setIfSet(&channel.Description, opts.Description)
	setPtrIfSet(&channel.Parameters, opts.Parameters)
	setPtrIfSet(&channel.ExternalDocs, opts.ExternalDocs)
	setPtrIfSet(&channel.Bindings, opts.Bindings)
	setPtrIfSet(&channel.Messages, opts.Messages)
	if opts.Servers != nil {
		channel.Servers = opts.Servers
	}
	if opts.Tags != nil {
		channel.Tags = opts.Tags
	}

	components.Channels.Set(name, entry)

	if root {
		return b.AddRootChannelAsRef(name)
	}
	return b.RemoveRootChannel(name, false)
}

// AddRootChannelAsRef adds a reference to the components channel name to the root channels.
func (b *Builder) AddRootChannelAsRef(name string) *Builder {
	if !b.checkKey(name, "channel") {
		return b
	}
	if !b.doc.GetComponents().GetChannels().Has(name) {
		b.err = ErrNotFound.Wrapf("cannot add channel %q to root channels: it does not exist in components.channels", name)
		return b
	}

	b.doc.Channels = sequencedmap.Ensure(b.doc.Channels)
	b.doc.Channels.Set(name, NewReferenceFromRef[Channel](ToComponentChannel(name)))
	return b
}

// RemoveRootChannel removes name from the root channels, and from components.channels when cascade is set.
func (b *Builder) RemoveRootChannel(name string, cascade bool) *Builder {
	if !b.checkKey(name, "channel") {
		return b
	}

	removeEntry(&b.doc.Channels, name)
	if cascade && b.doc.Components != nil {
		removeEntry(&b.doc.Components.Channels, name)
	}
	return b
}

// OperationOptions updates the fields of an operation. Zero and nil fields are left unchanged.
type OperationOptions struct {
	Action Action
	// ChannelName is the name of a channel in components.channels.
	ChannelName  string
	Title        *string
	Summary      *string
	Description  *string
	Security     []*ReferencedSecurityScheme
	Tags         []*ReferencedTag
	ExternalDocs *ReferencedExternalDocumentation
	Bindings     *ReferencedOperationBindings
	Traits       []*ReferencedOperationTrait
	Messages     []*ReferencedMessage
	Reply        *ReferencedOperationReply
}

// UpdateOrCreateOperation creates or updates the operation stored in components.operations under name.
// Action and channel name are required when the operation does not exist yet, and the channel must exist in
// components.channels. When root is set a reference to the operation is added to the root operations, otherwise any
// root reference is removed.
func (b *Builder) UpdateOrCreateOperation(name string, opts OperationOptions, root bool) *Builder {
	if !b.checkKey(name, "operation") {
		return b
	}

	var channel *ReferencedChannel
	if opts.ChannelName != "" {
		if !b.checkKey(opts.ChannelName, "channel") {
			return b
		}
		if !b.doc.GetComponents().GetChannels().Has(opts.ChannelName) {
			b.err = ErrNotFound.Wrapf("cannot create or update operation %q: channel %q does not exist in components.channels", name, opts.ChannelName)
			return b
		}
		channel = NewReferenceFromRef[Channel](b.operationChannelRef(opts.ChannelName, root))
	}

	if opts.Action != "" && !opts.Action.IsValid() {
		b.err = ErrInvalidValue.Wrapf("operation %q: action must be either send or receive, got %q", name, opts.Action)
		return b
	}

	components := b.doc.EnsureComponents()
	components.Operations = sequencedmap.Ensure(components.Operations)

	entry, ok := components.Operations.Get(name)
	if !ok {
		if opts.Action == "" {
			b.err = ErrMissingRequired.Wrapf("cannot create operation %q: action is required when creating an operation", name)
			return b
		}
		if channel == nil {
			b.err = ErrMissingRequired.Wrapf("cannot create operation %q: channel name is required when creating an operation", name)
			return b
		}
		entry = NewReferenceFromObject(&Operation{})
	}
	if entry.IsReference() {
		b.err = ErrStoredAsReference.Wrapf("operation %q is stored as reference %s, remove the reference first", name, entry.GetReference())
		return b
	}

	operation := entry.GetObject()
	if opts.Action != "" {
		operation.Action = opts.Action
	}
	setPtrIfSet(&operation.Channel, channel)
	setIfSet(&operation.Title, opts.Title)
	setIfSet(&operation.Summary, opts.Summary)
	setIfSet(&operation.Description, opts.Description)
	setPtrIfSet(&operation.ExternalDocs, opts.ExternalDocs)
	setPtrIfSet(&operation.Bindings, opts.Bindings)
	setPtrIfSet(&operation.Reply, opts.Reply)
	if opts.Security != nil {
		operation.Security = opts.Security
	}
	if opts.Tags != nil {
		operation.Tags = opts.Tags
	}
	if opts.Traits != nil {
		operation.Traits = opts.Traits
	}
	if opts.Messages != nil {
		operation.Messages = opts.Messages
	}

	components.Operations.Set(name, entry)

	if root {
		return b.AddRootOperationAsRef(name)
	}
	return b.RemoveRootOperation(name, false)
}

// AddRootOperationAsRef adds a reference to the components operation name to the root operations.
func (b *Builder) AddRootOperationAsRef(name string) *Builder {
	if !b.checkKey(name, "operation") {
		return b
	}
	if !b.doc.GetComponents().GetOperations().Has(name) {
		b.err = ErrNotFound.Wrapf("cannot add operation %q to root operations: it does not exist in components.operations", name)
		return b
	}

	b.doc.Operations = sequencedmap.Ensure(b.doc.Operations)
	b.doc.Operations.Set(name, NewReferenceFromRef[Operation](ToComponentOperation(name)))
	return b
}

// RemoveRootOperation removes name from the root operations, and from components.operations when cascade is set.
func (b *Builder) RemoveRootOperation(name string, cascade bool) *Builder {
	if !b.checkKey(name, "operation") {
		return b
	}

	removeEntry(&b.doc.Operations, name)
	if cascade && b.doc.Components != nil {
		removeEntry(&b.doc.Components.Operations, name)
	}
	return b
}

// operationChannelRef points root operations at the root channel when the channel is exposed at the root.
func (b *Builder) operationChannelRef(channelName string, root bool) references.Reference {
	if root && b.doc.GetChannels().Has(channelName) {
		return ToRootChannel(channelName)
	}
	return ToComponentChannel(channelName)
}

func (b *Builder) checkKey(name, kind string) bool {
	if b.err != nil {
		return false
	}
	if !patternedKey.MatchString(name) {
		b.err = ErrInvalidKey.Wrapf("%s name %q does not match the patterned key format, keys may only contain letters, digits, hyphens and underscores", kind, name)
		return false
	}
	return true
}

func setIfSet[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setPtrIfSet[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}

func removeEntry[V any](m **sequencedmap.Map[string, V], name string) {
	if *m == nil {
		return
	}
	(*m).Delete(name)
	if (*m).Len() == 0 {
		*m = nil
	}
}
