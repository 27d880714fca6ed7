package awssso

import "fmt"

const ConflictException = "ConflictException"

type NotFound [2]string // type, identifier

func (err NotFound) Error() string {
	return fmt.Sprintf("%s %s not found", err[0], err[1])
}

// ProvisioningFailedError reports a permission set provisioning request that
// the control plane marked FAILED.
type ProvisioningFailedError struct {
	RequestId, FailureReason string
}

func (err *ProvisioningFailedError) Error() string {
	return fmt.Sprintf("provisioning request %s failed: %s", err.RequestId, err.FailureReason)
}
