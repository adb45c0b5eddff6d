package components

// BombComponent 炸弹：碰到障碍物按轴弹回，引信到时转化为爆炸
type BombComponent struct {
	Elapsed float64
	Fuse    float64
	Damage  int
}
