// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type FeedbackDAO interface {
	Save(ctx context.Context, record Feedback) error
	ListAll(ctx context.Context) ([]Feedback, error)
	List(ctx context.Context, offset, limit int) ([]Feedback, error)
	Count(ctx context.Context) (int64, error)
}

type GORMFeedbackDAO struct {
	db *egorm.Component
}

func NewGORMFeedbackDAO(db *egorm.Component) FeedbackDAO {
	return &GORMFeedbackDAO{db: db}
}

// Save 按 record_id 幂等写入，后写覆盖先写
func (g *GORMFeedbackDAO) Save(ctx context.Context, record Feedback) error {
	now := time.Now().UnixMilli()
	record.Ctime = now
	record.Utime = now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "record_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"source", "source_id", "title", "content", "author",
			"created_at", "labels", "priority", "extra", "utime",
		}),
	}).Create(&record).Error
}

func (g *GORMFeedbackDAO) ListAll(ctx context.Context) ([]Feedback, error) {
	var res []Feedback
	err := g.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMFeedbackDAO) List(ctx context.Context, offset, limit int) ([]Feedback, error) {
	var res []Feedback
	err := g.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMFeedbackDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Feedback{}).Count(&res).Error
	return res, err
}

type Feedback struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	RecordID string `gorm:"column:record_id;type:varchar(256);not null;uniqueIndex:unq_record_id;comment:对外的反馈唯一标识，后写覆盖先写"`
	Source   string `gorm:"type:varchar(64);index:idx_source;comment:反馈来源渠道"`
	SourceID string `gorm:"column:source_id;type:varchar(256);comment:来源系统里的原始标识"`
	Title    string `gorm:"type:varchar(512)"`
	Content  string `gorm:"type:text"`
	Author   string `gorm:"type:varchar(256)"`
	// 反馈在来源系统里的产生时间，毫秒数。
	// 和 Ctime 区分开，Ctime 只是落库时间。
	CreatedAt int64                              `gorm:"column:created_at;autoCreateTime:false;index:idx_created_at"`
	Labels    sqlx.JsonColumn[[]string]          `gorm:"type:varchar(1024)"`
	Priority  string                             `gorm:"type:varchar(32)"`
	Extra     sqlx.JsonColumn[map[string]string] `gorm:"type:text"`
	Ctime     int64
	Utime     int64
}

func (Feedback) TableName() string {
	return "feedbacks"
}
