package awsiam

const (
	EntityAlreadyExists = "EntityAlreadyExists"
	NoSuchEntity        = "NoSuchEntity"
)
