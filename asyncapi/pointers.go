package asyncapi

import "github.com/speakeasy-api/asyncapi/references"

// Keys of the root collections and of the components sub-collections as they appear in pointers.
const (
	KeyServers    = "servers"
	KeyChannels   = "channels"
	KeyOperations = "operations"
	KeyComponents = "components"

	KeySchemas           = "schemas"
	KeyMessages          = "messages"
	KeySecuritySchemes   = "securitySchemes"
	KeyServerVariables   = "serverVariables"
	KeyParameters        = "parameters"
	KeyCorrelationIDs    = "correlationIds"
	KeyReplies           = "replies"
	KeyReplyAddresses    = "replyAddresses"
	KeyExternalDocs      = "externalDocs"
	KeyTags              = "tags"
	KeyOperationTraits   = "operationTraits"
	KeyMessageTraits     = "messageTraits"
	KeyServerBindings    = "serverBindings"
	KeyChannelBindings   = "channelBindings"
	KeyOperationBindings = "operationBindings"
	KeyMessageBindings   = "messageBindings"
)

// ToComponent returns the pointer to an entry of a components sub-collection.
func ToComponent(collection, name string) references.Reference {
	return references.Join(KeyComponents, collection, name)
}

// ComponentPrefix returns the pointer prefix shared by every entry of a components sub-collection.
func ComponentPrefix(collection string) string {
	return references.Join(KeyComponents, collection).String() + references.PathSeparator
}

// ToRootServer returns #/servers/<name>.
func ToRootServer(name string) references.Reference {
	return references.Join(KeyServers, name)
}

// ToRootChannel returns #/channels/<name>.
func ToRootChannel(name string) references.Reference {
	return references.Join(KeyChannels, name)
}

// ToRootOperation returns #/operations/<name>.
func ToRootOperation(name string) references.Reference {
	return references.Join(KeyOperations, name)
}

// Component pointer factories, each returning #/components/<collection>/<name>.

func ToComponentSchema(name string) references.Reference { return ToComponent(KeySchemas, name) }
func ToComponentServer(name string) references.Reference { return ToComponent(KeyServers, name) }
func ToComponentChannel(name string) references.Reference { return ToComponent(KeyChannels, name) }
func ToComponentOperation(name string) references.Reference { return ToComponent(KeyOperations, name) }
func ToComponentMessage(name string) references.Reference { return ToComponent(KeyMessages, name) }
func ToComponentSecurityScheme(name string) references.Reference { return ToComponent(KeySecuritySchemes, name) }
func ToComponentServerVariable(name string) references.Reference { return ToComponent(KeyServerVariables, name) }
func ToComponentParameter(name string) references.Reference { return ToComponent(KeyParameters, name) }
func ToComponentCorrelationID(name string) references.Reference { return ToComponent(KeyCorrelationIDs, name) }
func ToComponentReply(name string) references.Reference { return ToComponent(KeyReplies, name) }
func ToComponentReplyAddress(name string) references.Reference { return ToComponent(KeyReplyAddresses, name) }
func ToComponentExternalDoc(name string) references.Reference { return ToComponent(KeyExternalDocs, name) }
func ToComponentTag(name string) references.Reference { return ToComponent(KeyTags, name) }
func ToComponentOperationTrait(name string) references.Reference { return ToComponent(KeyOperationTraits, name) }
func ToComponentMessageTrait(name string) references.Reference { return ToComponent(KeyMessageTraits, name) }
func ToComponentServerBinding(name string) references.Reference { return ToComponent(KeyServerBindings, name) }
func ToComponentChannelBinding(name string) references.Reference { return ToComponent(KeyChannelBindings, name) }
func ToComponentOperationBinding(name string) references.Reference { return ToComponent(KeyOperationBindings, name) }
func ToComponentMessageBinding(name string) references.Reference { return ToComponent(KeyMessageBindings, name) }
