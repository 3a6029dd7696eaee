// render_transition_frames.go - 过渡帧序列离屏渲染工具
// 在无 GPU 环境下用软件合成把一次完整过渡渲染成 WebP 帧序列，
// 供视觉回归对比和文档配图使用
//
// 用法：
//
//	go run cmd/render_transition_frames/main.go --type=pagecurl --frames=24 --out=out/pagecurl
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	xdraw "golang.org/x/image/draw"

	"github.com/decker502/pageturn/pkg/config"
	"github.com/decker502/pageturn/pkg/render"
	"github.com/decker502/pageturn/pkg/transition"
	"github.com/decker502/pageturn/pkg/types"
)

var (
	typeName = flag.String("type", "fade", "过渡类型 (slide/fade/zoom/flip/pagecurl)")
	frames   = flag.Int("frames", 24, "输出帧数")
	width    = flag.Int("width", 400, "页面宽度")
	height   = flag.Int("height", 600, "页面高度")
	outDir   = flag.String("out", "out", "输出目录")
)

// parseTransitionType 解析命令行给出的过渡类型名
func parseTransitionType(name string) (types.TransitionType, error) {
	for t := types.TransitionSlide; t <= types.TransitionAccordion; t++ {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return types.TransitionSlide, fmt.Errorf("未知的过渡类型: %s", name)
}

// makePage 生成一张带竖向渐变和色带标记的测试页面
func makePage(w, h int, base color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		shade := uint8(200 - 100*y/h)
		for x := 0; x < w; x++ {
			c := color.NRGBA{
				R: uint8(int(base.R) * int(shade) / 255),
				G: uint8(int(base.G) * int(shade) / 255),
				B: uint8(int(base.B) * int(shade) / 255),
				A: 255,
			}
			// 横向色带便于肉眼对齐平移量
			if (y/40)%2 == 0 && x < w/10 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// compositeTarget 按虚拟目标的变换状态把页面软件合成到画布上
// 与 PageSurface 的 GPU 路径保持同一套几何约定：
// 旋转角用余弦压缩对应轴向宽高来近似透视
func compositeTarget(dst *image.NRGBA, src image.Image, vt *render.VirtualTarget) {
	if vt.AlphaValue <= 0 {
		return
	}

	squashX := math.Abs(math.Cos(vt.RotationY * math.Pi / 180))
	squashY := math.Abs(math.Cos(vt.RotationX * math.Pi / 180))
	w := vt.Width * vt.ScaleX * squashX
	h := vt.Height * vt.ScaleY * squashY
	if w < 1 || h < 1 {
		return
	}

	// 锚点在缩放前后保持不动
	x0 := vt.PivotX - vt.PivotX*vt.ScaleX*squashX + vt.TranslationX
	y0 := vt.PivotY - vt.PivotY*vt.ScaleY*squashY + vt.TranslationY
	rect := image.Rect(int(x0), int(y0), int(x0+w), int(y0+h))

	scaled := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(vt.AlphaValue * 255))})
	xdraw.DrawMask(dst, rect, scaled, image.Point{}, mask, image.Point{}, xdraw.Over)
}

// renderFrame 合成单帧：按叠放次序先画低层再画高层
func renderFrame(w, h int, outgoing, incoming *render.VirtualTarget, outPage, inPage image.Image) *image.NRGBA {
	frame := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(frame, frame.Bounds(), image.NewUniform(color.NRGBA{R: 24, G: 24, B: 24, A: 255}),
		image.Point{}, xdraw.Src)

	if outgoing.ElevationZ <= incoming.ElevationZ {
		compositeTarget(frame, outPage, outgoing)
		compositeTarget(frame, inPage, incoming)
	} else {
		compositeTarget(frame, inPage, incoming)
		compositeTarget(frame, outPage, outgoing)
	}
	return frame
}

func run() error {
	t, err := parseTransitionType(*typeName)
	if err != nil {
		return err
	}
	if *frames < 2 {
		return fmt.Errorf("帧数至少为 2")
	}

	if err := config.LoadTransitionPresets(); err != nil {
		log.Printf("[RenderFrames] 预设加载失败，使用策略默认配置: %v", err)
	}

	strategy := transition.New(t)
	config.ApplyPreset(strategy, t)
	strategy.Prepare()
	defer strategy.Cleanup()

	ease := strategy.Config().Easing.Func()
	log.Printf("[RenderFrames] 策略 %s, %d 帧, %dx%d, 缓动 %v",
		strategy.Name(), *frames, *width, *height, strategy.Config().Easing)

	outPage := makePage(*width, *height, color.NRGBA{R: 70, G: 130, B: 240})
	inPage := makePage(*width, *height, color.NRGBA{R: 240, G: 130, B: 70})

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	outgoing := render.NewVirtualTarget(float64(*width), float64(*height))
	incoming := render.NewVirtualTarget(float64(*width), float64(*height))

	for i := 0; i < *frames; i++ {
		progress := ease(float64(i) / float64(*frames-1))

		// 离开页从 0 推向 1，进入页从 -1 收向 0
		if err := strategy.ApplyTransform(outgoing, progress); err != nil {
			return fmt.Errorf("帧 %d 离开页变换失败: %w", i, err)
		}
		if err := strategy.ApplyTransform(incoming, progress-1); err != nil {
			return fmt.Errorf("帧 %d 进入页变换失败: %w", i, err)
		}

		frame := renderFrame(*width, *height, outgoing, incoming, outPage, inPage)

		outPath := filepath.Join(*outDir, fmt.Sprintf("%s_%03d.webp", strings.ToLower(strategy.Name()), i))
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("创建输出文件失败: %w", err)
		}
		if err := nativewebp.Encode(f, frame, nil); err != nil {
			f.Close()
			return fmt.Errorf("WebP 编码失败: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	log.Printf("[RenderFrames] ✓ 已输出 %d 帧到 %s", *frames, *outDir)
	return nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("[RenderFrames] %v", err)
	}
}
