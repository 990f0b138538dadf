package models

import (
	"time"
)

// 突然变异类型（5 种固定，植物每种最多持有一个）
type MutationID string

const (
	MutationVariegated MutationID = "variegated"  // 斑纹
	MutationTintShift  MutationID = "tint_shift"  // 色调变化
	MutationLeafShape  MutationID = "leaf_shape"  // 叶形变化
	MutationDwarf      MutationID = "dwarf"       // 矮化
	MutationGrowthForm MutationID = "growth_form" // 枝条形态
)

// AllMutationIDs 抽选时按这个顺序取下标，顺序不能乱
var AllMutationIDs = []MutationID{
	MutationVariegated,
	MutationTintShift,
	MutationLeafShape,
	MutationDwarf,
	MutationGrowthForm,
}

// 病害类型，空串表示没病
type DiseaseType string

const (
	DiseaseNone        DiseaseType = ""
	DiseaseRootRot     DiseaseType = "root_rot"     // 烂根
	DiseasePest        DiseaseType = "pest"         // 虫害
	DiseaseFungus      DiseaseType = "fungus"       // 霉菌
	DiseaseNutrientDef DiseaseType = "nutrient_def" // 营养不良
)

// RandomDiseaseTypes 随机生病时按下标抽取（不含烂根，烂根只由浇水过多触发）
var RandomDiseaseTypes = []DiseaseType{
	DiseasePest,
	DiseaseFungus,
	DiseaseNutrientDef,
}

// 专注时长选项（分钟），只有这四档
type SessionMinutes int

const (
	Minutes10 SessionMinutes = 10
	Minutes25 SessionMinutes = 25
	Minutes45 SessionMinutes = 45
	Minutes60 SessionMinutes = 60
)

var AllSessionMinutes = []SessionMinutes{Minutes10, Minutes25, Minutes45, Minutes60}

// Valid 判断是不是合法档位
func (m SessionMinutes) Valid() bool {
	for _, v := range AllSessionMinutes {
		if m == v {
			return true
		}
	}
	return false
}

// Duration 档位对应的名义时长
func (m SessionMinutes) Duration() time.Duration {
	return time.Duration(m) * time.Minute
}

// 会话状态机：active -> completed | interrupted（终态）
type SessionStatus string

const (
	StatusActive      SessionStatus = "active"
	StatusCompleted   SessionStatus = "completed"
	StatusInterrupted SessionStatus = "interrupted"
)

// MutationList 存成 json 列，gorm 的序列化器会处理
type MutationList []MutationID

// Contains 是否已持有该变异
func (l MutationList) Contains(id MutationID) bool {
	for _, m := range l {
		if m == id {
			return true
		}
	}
	return false
}

// CareState 养护子状态，嵌入 Plant；衰减引擎只读写这一块
type CareState struct {
	WaterLevel       float64     `json:"water_level"`
	NutritionLevel   float64     `json:"nutrition_level"`
	Health           float64     `json:"health"`
	Disease          DiseaseType `json:"disease_type"`
	LastWateredAt    *time.Time  `json:"last_watered_at"`
	LastFertilizedAt *time.Time  `json:"last_fertilized_at"`
	// 衰减结算到哪个时刻；经过时间从这里起算，算错会重复扣
	LastCareCheckAt time.Time `json:"last_care_check_at"`
	IsDead          bool      `json:"is_dead"`
}

// HasDisease 有没有生病
func (c CareState) HasDisease() bool { return c.Disease != DiseaseNone }

// 一株正在培养的植物
type Plant struct {
	ID        string  `json:"id" gorm:"primaryKey;type:uuid"`
	SpeciesID string  `json:"species_id" gorm:"index"`
	SlotIndex int     `json:"slot_index" gorm:"uniqueIndex"` // 独占培养槽位
	Nickname  *string `json:"nickname"`

	GrowthPoints int          `json:"growth_points"` // GP，只增不减
	Mutations    MutationList `json:"mutations" gorm:"serializer:json"`

	CareState `gorm:"embedded"`

	PlantedAt time.Time `json:"planted_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// 一次专注会话，覆盖当前所有培养中的植物
type FocusSession struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	Minutes   SessionMinutes `json:"minutes"`
	Status    SessionStatus  `json:"status"`
	StartedAt time.Time      `json:"started_at"`
	EndedAt   *time.Time     `json:"ended_at"` // 进行中为 nil
}

// PlantSessionResult 会话结束时每株植物的结算结果（不落库，算完即用）
type PlantSessionResult struct {
	PlantID     string     `json:"plant_id"`
	EarnedGP    int        `json:"earned_gp"`
	NewMutation MutationID `json:"new_mutation,omitempty"` // 空串表示没抽中
}

// 未种下的种子，抽卡获得，种下时消耗
type Seed struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	SpeciesID  string    `json:"species_id"`
	ObtainedAt time.Time `json:"obtained_at"`
}

// Setting 键值设置表（槽位上限、抽卡计数等）
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey"`
	Value string `json:"value"`
}
