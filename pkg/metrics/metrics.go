package metrics

// RecordEdgeAdded records a successful AddEdge call and the new edge count.
func (r *Registry) RecordEdgeAdded(edgesCurrent int) {
	if r == nil {
		return
	}
	r.EdgesAddedTotal.Inc()
	r.EdgesCurrent.Set(float64(edgesCurrent))
}

// RecordEdgeDeleted records a successful DeleteEdge call and the new edge count.
func (r *Registry) RecordEdgeDeleted(edgesCurrent int) {
	if r == nil {
		return
	}
	r.EdgesDeletedTotal.Inc()
	r.EdgesCurrent.Set(float64(edgesCurrent))
}

// RecordEdgeRefused records a refused edge mutation, e.g. "occupied" or "duplicate".
func (r *Registry) RecordEdgeRefused(reason string) {
	if r == nil {
		return
	}
	r.EdgesRefusedTotal.WithLabelValues(reason).Inc()
}

// RecordConnection records a successful Connect call.
func (r *Registry) RecordConnection() {
	if r == nil {
		return
	}
	r.ConnectionsTotal.Inc()
}

// RecordDisconnection records a Disconnect call outcome ("removed" or "refused").
func (r *Registry) RecordDisconnection(outcome string) {
	if r == nil {
		return
	}
	r.DisconnectionsTotal.WithLabelValues(outcome).Inc()
}

// RecordNodeTouched records an implicit node reference.
func (r *Registry) RecordNodeTouched() {
	if r == nil {
		return
	}
	r.NodesTouchedTotal.Inc()
}

// RecordSliceAdded records a successful AddSlice call and the new slice count.
func (r *Registry) RecordSliceAdded(slicesCurrent int) {
	if r == nil {
		return
	}
	r.SlicesAddedTotal.Inc()
	r.SlicesCurrent.Set(float64(slicesCurrent))
}

// RecordSliceDeleted records a successful DeleteSlice call and the new slice count.
func (r *Registry) RecordSliceDeleted(slicesCurrent int) {
	if r == nil {
		return
	}
	r.SlicesDeletedTotal.Inc()
	r.SlicesCurrent.Set(float64(slicesCurrent))
}

// RecordModifySlice records the signed delta actually applied by ModifySlice.
func (r *Registry) RecordModifySlice(delta int) {
	if r == nil || delta == 0 {
		return
	}
	if delta > 0 {
		r.SliceGrowsTotal.Inc()
		r.SliceModifyDelta.Observe(float64(delta))
	} else {
		r.SliceShrinksTotal.Inc()
		r.SliceModifyDelta.Observe(float64(-delta))
	}
}

// RecordDivisionBlock records a successful addDivision call and the active count.
func (r *Registry) RecordDivisionBlock(divisionsActive int) {
	if r == nil {
		return
	}
	r.DivisionBlocksTotal.Inc()
	r.DivisionsActive.Set(float64(divisionsActive))
}

// RecordDivisionUnblock records a successful deleteDivision call and the active count.
func (r *Registry) RecordDivisionUnblock(divisionsActive int) {
	if r == nil {
		return
	}
	r.DivisionUnblocksTotal.Inc()
	r.DivisionsActive.Set(float64(divisionsActive))
}
