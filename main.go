package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/uforaid/pkg/app"
	"github.com/gonewx/uforaid/pkg/embedded"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细日志")
	level   = flag.String("level", "", "启动关卡ID (如 level-2),默认第一关")
	seed    = flag.Int64("seed", 0, "随机种子,0 表示使用当前时间")
	debug   = flag.Bool("debug", false, "在 HUD 上显示调试信息")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，必须在任何配置加载之前
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Level:   *level,
		Seed:    *seed,
		Debug:   *debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	w, h := game.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("UFO Raid")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
