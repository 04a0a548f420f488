package components

// InvaderComponent 编队中的单个入侵者
//
// 位置由编队原点加上 (LocalX, LocalY) 得到，编队整体移动。
type InvaderComponent struct {
	Row    int
	Column int
	LocalX float64 // 相对编队原点的偏移
	LocalY float64
	Score  int // 击毁得分
	Alive  bool
}

// FormationComponent 入侵者编队
type FormationComponent struct {
	OriginX, OriginY   float64 // 当前编队原点（世界坐标）
	InitialX, InitialY float64 // 每回合重置到的位置
	Direction          float64 // +1 向右，-1 向左
	RowsAdvanced       int     // 已下移的行数
	Killed             int     // 本回合已击毁数量
	Total              int     // 入侵者总数
	Landed             bool    // 本回合是否已抵达玩家所在行
	Halted             bool    // 游戏结束时停止移动、射击并隐藏
	Members            []EntityRef
}

// Alive 存活数量
func (f *FormationComponent) Alive() int {
	return f.Total - f.Killed
}

// KilledFraction 击毁比例，用于速度曲线
func (f *FormationComponent) KilledFraction() float64 {
	if f.Total == 0 {
		return 0
	}
	return float64(f.Killed) / float64(f.Total)
}
