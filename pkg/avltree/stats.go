package avltree

// Stats 记录旋转次数，双旋算一次再平衡事件
type Stats struct {
	SingleRotations int
	DoubleRotations int
	// 最近一次 Insert/Remove 内的再平衡事件
	LastSingle int
	LastDouble int
}

// LastRebalances 最近一次修改触发的再平衡次数
func (s Stats) LastRebalances() int {
	return s.LastSingle + s.LastDouble
}

func (s *Stats) countSingle() {
	s.SingleRotations++
	s.LastSingle++
}

func (s *Stats) countDouble() {
	s.DoubleRotations++
	s.LastDouble++
}

func (t *AVLTree[K, V]) beginOp() {
	t.stats.LastSingle = 0
	t.stats.LastDouble = 0
}

func (t *AVLTree[K, V]) Stats() Stats {
	return t.stats
}
