package metric

import (
	"fmt"
	"reflect"

	"go.opentelemetry.io/otel"
	otm "go.opentelemetry.io/otel/metric"
)

// createMeters populates every instrument field of the struct pointed to by
// meters using its name, description and unit tags.
func createMeters(meters any) error {
	meter := otel.Meter(meterName)
	mt := reflect.TypeOf(meters).Elem()
	mv := reflect.ValueOf(meters).Elem()
	for i := range mt.NumField() {
		field := mt.Field(i)
		name := field.Tag.Get("name")
		description := field.Tag.Get("description")
		unit := field.Tag.Get("unit")
		vField := mv.Field(i)
		var m any
		var err error
		switch vField.Type() {
		case reflect.TypeOf((*otm.Int64Histogram)(nil)).Elem():
			m, err = meter.Int64Histogram(name, otm.WithDescription(description), otm.WithUnit(unit))
		case reflect.TypeOf((*otm.Float64Histogram)(nil)).Elem():
			m, err = meter.Float64Histogram(name, otm.WithDescription(description), otm.WithUnit(unit))
		case reflect.TypeOf((*otm.Int64Counter)(nil)).Elem():
			m, err = meter.Int64Counter(name, otm.WithDescription(description), otm.WithUnit(unit))
		case reflect.TypeOf((*otm.Float64Counter)(nil)).Elem():
			m, err = meter.Float64Counter(name, otm.WithDescription(description), otm.WithUnit(unit))
		case reflect.TypeOf((*otm.Int64UpDownCounter)(nil)).Elem():
			m, err = meter.Int64UpDownCounter(name, otm.WithDescription(description), otm.WithUnit(unit))
		case reflect.TypeOf((*otm.Int64Gauge)(nil)).Elem():
			m, err = meter.Int64Gauge(name, otm.WithDescription(description), otm.WithUnit(unit))
		case reflect.TypeOf((*otm.Float64Gauge)(nil)).Elem():
			m, err = meter.Float64Gauge(name, otm.WithDescription(description), otm.WithUnit(unit))
		default:
			return fmt.Errorf("meter with type %v is not supported", vField.Type())
		}
		if err != nil {
			return err
		}
		vField.Set(reflect.ValueOf(m))
	}
	return nil
}
