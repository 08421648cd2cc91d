package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityMotion     = 10
	PriorityColor      = 20
	PriorityAggregate  = 30 // After motion and color, before consumers of global positions
	PriorityForceField = 40
	PriorityProximity  = 50
	PriorityPortal     = 60
	PriorityHostSync   = 70   // After all swarm state is settled
	PriorityMetrics    = 1000 // After all others, telemetry collection
)
