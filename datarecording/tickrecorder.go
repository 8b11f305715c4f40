package datarecording

import (
	"reflect"

	"github.com/robotick-labs/robotick/tick"
)

// A TickRecorder is a tick.Hook that samples one workload's Outputs block
// into a recorder table after every tick of that workload. The table schema
// is TickCount, Time, plus one column per Outputs field.
//
// Attach it to the engine that ticks the workload:
//
//	rec := datarecording.NewDataRecorder("run")
//	engine.AcceptHook(datarecording.NewTickRecorder(
//		rec, filter, &filter.Outputs, "filter"))
type TickRecorder struct {
	recorder  DataRecorder
	workload  tick.Workload
	outputs   reflect.Value
	rowType   reflect.Type
	tableName string
}

// NewTickRecorder creates a TickRecorder. The outputs argument must be a
// pointer to the workload's Outputs block, a flat struct of primitives.
func NewTickRecorder(
	recorder DataRecorder,
	w tick.Workload,
	outputs any,
	tableName string,
) *TickRecorder {
	outputsVal := reflect.ValueOf(outputs)
	if outputsVal.Kind() != reflect.Ptr ||
		outputsVal.Elem().Kind() != reflect.Struct {
		panic("outputs must be a pointer to the workload's Outputs struct")
	}

	elem := outputsVal.Elem().Type()
	fields := []reflect.StructField{
		{Name: "TickCount", Type: reflect.TypeOf(uint64(0))},
		{Name: "Time", Type: reflect.TypeOf(float64(0))},
	}
	for i := 0; i < elem.NumField(); i++ {
		fields = append(fields, reflect.StructField{
			Name: elem.Field(i).Name,
			Type: elem.Field(i).Type,
		})
	}

	r := &TickRecorder{
		recorder:  recorder,
		workload:  w,
		outputs:   outputsVal.Elem(),
		rowType:   reflect.StructOf(fields),
		tableName: tableName,
	}

	recorder.CreateTable(tableName, reflect.Zero(r.rowType).Interface())

	return r
}

// Func records a row when the hook fires after a tick of the recorded
// workload.
func (r *TickRecorder) Func(ctx tick.HookCtx) {
	if ctx.Pos != tick.HookPosAfterTick {
		return
	}

	w, ok := ctx.Detail.(tick.Workload)
	if !ok || w != r.workload {
		return
	}

	ti := ctx.Item.(tick.TickInfo)

	row := reflect.New(r.rowType).Elem()
	row.Field(0).SetUint(ti.TickCount)
	row.Field(1).SetFloat(float64(ti.Time))
	for i := 0; i < r.outputs.NumField(); i++ {
		row.Field(i + 2).Set(r.outputs.Field(i))
	}

	r.recorder.InsertData(r.tableName, row.Interface())
}
