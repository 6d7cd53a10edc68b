package icon

import (
	"math"

	"github.com/amimof/huego"
	"room-summary/internal/domain/model"
	"room-summary/internal/domain/sensor"
)

var colorModes = map[string]string{
	"color_temp": "ct",
	"hs":         "hs",
	"xy":         "xy",
	"rgb":        "xy",
	"rgbw":       "xy",
	"rgbww":      "xy",
}

// LightAppearance maps a light's attributes onto Hue state values, which the
// renderer uses to tint the entity icon. Non-light entities yield nil.
func LightAppearance(state model.EntityState) *huego.State {
	if state.Domain != "light" {
		return nil
	}
	hue := &huego.State{
		On:        state.State == model.StateOn,
		Reachable: state.State != model.StateUnavailable,
		ColorMode: colorModes[state.StringAttr("color_mode")],
		Effect:    state.StringAttr("effect"),
	}

	if bri, ok := sensor.AttrNumber(state, "brightness"); ok {
		hue.Bri = uint8(clamp(bri, 0, 254))
	}

	if mireds, ok := sensor.AttrNumber(state, "color_temp"); ok {
		hue.Ct = uint16(clamp(mireds, 153, 500))
	} else if kelvin, ok := sensor.AttrNumber(state, "color_temp_kelvin"); ok && kelvin > 0 {
		hue.Ct = uint16(clamp(math.Round(1e6/kelvin), 153, 500))
	}

	if hs, ok := pair(state, "hs_color"); ok {
		hue.Hue = uint16(math.Round(clamp(hs[0], 0, 360) / 360 * 65535))
		hue.Sat = uint8(math.Round(clamp(hs[1], 0, 100) / 100 * 254))
	}
	if xy, ok := pair(state, "xy_color"); ok {
		hue.Xy = []float32{float32(xy[0]), float32(xy[1])}
	}
	return hue
}

func pair(state model.EntityState, name string) ([2]float64, bool) {
	raw, ok := state.Attr(name)
	if !ok {
		return [2]float64{}, false
	}
	items, ok := raw.([]interface{})
	if !ok || len(items) < 2 {
		return [2]float64{}, false
	}
	first, ok1 := sensor.ToFloat(items[0])
	second, ok2 := sensor.ToFloat(items[1])
	return [2]float64{first, second}, ok1 && ok2
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
