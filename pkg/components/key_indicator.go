package components

// KeyIndicatorComponent 钥匙图标，打开宝箱后显示在 HUD 上
type KeyIndicatorComponent struct{}
