package price

import "testing"

func TestRenderChart_NeedsTwoPoints(t *testing.T) {
	for _, snap := range []Snapshot{
		{},
		{Prices: []float64{100}, Labels: []string{"t0"}},
	} {
		if _, err := RenderChart(snap); err == nil {
			t.Errorf("expected error for %d points", len(snap.Prices))
		}
	}
}

func TestRenderChart_ProducesPNG(t *testing.T) {
	snap := Snapshot{}
	for i := 0; i < 10; i++ {
		snap.Prices = append(snap.Prices, 50000+float64(i%3)*25)
		snap.Labels = append(snap.Labels, "12:00:0"+string(rune('0'+i%10)))
	}
	img, err := RenderChart(snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(img) < 8 {
		t.Fatal("empty image")
	}
	// PNG signature
	if img[0] != 0x89 || string(img[1:4]) != "PNG" {
		t.Errorf("not a PNG: % x", img[:8])
	}
}
