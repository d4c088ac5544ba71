package database

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	// 用于GORM追踪的仪器名称
	instrumentationName = "internal/pkg/database/tracing"

	// 在 gorm 实例上暂存 span 的键
	spanKey = "tracing:span"
)

// GormTracingPlugin 是一个实现了gorm.Plugin接口的追踪插件
// 它为所有数据库操作添加OpenTelemetry追踪功能
type GormTracingPlugin struct {
	tracer trace.Tracer
}

// NewGormTracingPlugin 创建一个新的GORM追踪插件
func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

// Name 返回插件名称
func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

// Initialize 初始化插件，注册GORM回调
func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	// 查询操作。查不到数据不算错误
	if err := db.Callback().Query().Before("gorm:query").Register("tracing:before_query", p.before("SELECT")); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("tracing:after_query", p.after("SELECT", true)); err != nil {
		return err
	}

	// 创建操作
	if err := db.Callback().Create().Before("gorm:create").Register("tracing:before_create", p.before("INSERT")); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Register("tracing:after_create", p.after("INSERT", false)); err != nil {
		return err
	}

	// 更新操作
	if err := db.Callback().Update().Before("gorm:update").Register("tracing:before_update", p.before("UPDATE")); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("tracing:after_update", p.after("UPDATE", false)); err != nil {
		return err
	}

	// 删除操作
	if err := db.Callback().Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("DELETE")); err != nil {
		return err
	}
	if err := db.Callback().Delete().After("gorm:delete").Register("tracing:after_delete", p.after("DELETE", false)); err != nil {
		return err
	}

	// 原始SQL操作
	if err := db.Callback().Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("RAW")); err != nil {
		return err
	}
	if err := db.Callback().Raw().After("gorm:raw").Register("tracing:after_raw", p.after("RAW", false)); err != nil {
		return err
	}

	return nil
}

// before 在操作执行前开启 span，暂存在 gorm 实例上等待对应的 after 回调
func (p *GormTracingPlugin) before(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		spanName := op
		if db.Statement.Table != "" {
			spanName = fmt.Sprintf("%s %s", db.Statement.Table, op)
		}
		ctx, span := p.tracer.Start(
			extractContext(db),
			spanName,
			trace.WithSpanKind(trace.SpanKindClient),
		)
		db.Statement.Context = ctx
		db.Set(spanKey, span)
	}
}

// after 取出暂存的 span，补充属性并按执行结果设置状态
// ignoreNotFound 为 true 时 ErrRecordNotFound 不标记为错误
func (p *GormTracingPlugin) after(op string, ignoreNotFound bool) func(*gorm.DB) {
	return func(db *gorm.DB) {
		spanValue, exists := db.Get(spanKey)
		if !exists {
			return
		}
		span, ok := spanValue.(trace.Span)
		if !ok {
			return
		}
		defer span.End()

		setSpanAttributes(span, op, db)

		if db.Error != nil && !(ignoreNotFound && errors.Is(db.Error, gorm.ErrRecordNotFound)) {
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}

// 辅助函数：从GORM DB中提取上下文
func extractContext(db *gorm.DB) context.Context {
	if db.Statement == nil {
		return context.Background()
	}
	return db.Statement.Context
}

// 辅助函数：设置span的通用属性
func setSpanAttributes(span trace.Span, op string, db *gorm.DB) {
	attributes := []attribute.KeyValue{
		attribute.String("db.system", "mysql"),
		attribute.String("db.name", db.Dialector.Name()),
		attribute.String("db.operation", op),
	}

	if db.Statement.Schema != nil {
		attributes = append(attributes, attribute.String("db.table", db.Statement.Schema.Table))
	} else if db.Statement.Table != "" {
		attributes = append(attributes, attribute.String("db.table", db.Statement.Table))
	}

	// 当SQL语句准备好时添加
	if db.Statement.SQL.String() != "" {
		attributes = append(attributes, attribute.String("db.statement", db.Statement.SQL.String()))
	}

	// 添加影响的行数
	if db.Statement.RowsAffected > 0 {
		attributes = append(attributes, attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}

	span.SetAttributes(attributes...)
}
