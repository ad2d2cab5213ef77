package price

import (
	"errors"
	"sync"
	"time"

	"github.com/vicanso/go-charts/v2"
)

const chartCacheTTL = 2 * time.Second

var (
	chartCache   []byte
	chartCacheAt time.Time
	chartCacheMu sync.Mutex
)

// RenderChart draws the full history snapshot as a PNG line chart. Repeated
// calls within the cache TTL reuse the previous image, so a burst of chart
// requests does not re-render per call.
func RenderChart(snap Snapshot) ([]byte, error) {
	if len(snap.Prices) < 2 {
		return nil, errors.New("not enough data points")
	}

	chartCacheMu.Lock()
	if chartCache != nil && time.Since(chartCacheAt) < chartCacheTTL {
		img := make([]byte, len(chartCache))
		copy(img, chartCache)
		chartCacheMu.Unlock()
		return img, nil
	}
	chartCacheMu.Unlock()

	yMin, yMax := snap.Prices[0], snap.Prices[0]
	for _, v := range snap.Prices {
		if v < yMin {
			yMin = v
		}
		if v > yMax {
			yMax = v
		}
	}
	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.0002 {
		pad = yMax * 0.0002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	painter, err := charts.LineRender([][]float64{snap.Prices},
		charts.TitleTextOptionFunc("BTC/USDT • 1s"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: snap.Labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 8}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	img, err := painter.Bytes()
	if err != nil {
		return nil, err
	}

	chartCacheMu.Lock()
	chartCache = img
	chartCacheAt = time.Now()
	chartCacheMu.Unlock()

	out := make([]byte, len(img))
	copy(out, img)
	return out, nil
}
