package dto

// SandboxResolveRequest completes checkout for an order in the simulated gateway
type SandboxResolveRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed declined"`
	Reason string `json:"reason"`
}
