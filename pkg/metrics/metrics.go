package metrics

const namespace = "cellar_node"

// NodeMetrics groups node-level metric collectors.
type NodeMetrics struct {
	stateMetrics
}

// NewNodeMetrics registers node-level collectors in the default prometheus
// registry and returns their group. Service-level collectors are registered
// by the services themselves.
func NewNodeMetrics(version string) *NodeMetrics {
	state := newStateMetrics()
	state.register()

	registerVersionMetric(namespace, version)

	return &NodeMetrics{
		stateMetrics: state,
	}
}
