package models

// 稀有度等级
type Rarity string

const (
	RarityCommon Rarity = "common"
	RarityRare   Rarity = "rare"
	RarityEpic   Rarity = "epic"
)

// PlantSpecies 植物种静态数据（展示名、稀有度、分类、成长速度系数）
type PlantSpecies struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	NameEn     string  `json:"name_en"`
	Rarity     Rarity  `json:"rarity"`
	Category   string  `json:"category"`
	GrowthRate float64 `json:"growth_rate_multiplier"` // 1.0 为基准
}

// Species 植物种目录，抽卡和展示都从这里查
var Species = []PlantSpecies{
	// ---- Common ----
	{ID: "echeveria", Name: "石莲花", NameEn: "Echeveria", Rarity: RarityCommon, Category: "多肉", GrowthRate: 0.8},
	{ID: "sedum", Name: "景天", NameEn: "Sedum", Rarity: RarityCommon, Category: "多肉", GrowthRate: 1.2},
	{ID: "aloe", Name: "芦荟", NameEn: "Aloe", Rarity: RarityCommon, Category: "多肉", GrowthRate: 0.9},
	{ID: "haworthia", Name: "十二卷", NameEn: "Haworthia", Rarity: RarityCommon, Category: "多肉", GrowthRate: 0.7},
	{ID: "crassula", Name: "青锁龙", NameEn: "Crassula", Rarity: RarityCommon, Category: "多肉", GrowthRate: 1.0},
	{ID: "pothos", Name: "绿萝", NameEn: "Pothos", Rarity: RarityCommon, Category: "观叶", GrowthRate: 1.3},
	{ID: "sansevieria", Name: "虎尾兰", NameEn: "Sansevieria", Rarity: RarityCommon, Category: "观叶", GrowthRate: 0.6},
	{ID: "pachira", Name: "发财树", NameEn: "Pachira", Rarity: RarityCommon, Category: "观叶", GrowthRate: 1.1},
	{ID: "ficus", Name: "榕树", NameEn: "Ficus", Rarity: RarityCommon, Category: "观叶", GrowthRate: 1.0},
	{ID: "monstera", Name: "龟背竹", NameEn: "Monstera", Rarity: RarityCommon, Category: "观叶", GrowthRate: 1.2},
	{ID: "basil", Name: "罗勒", NameEn: "Basil", Rarity: RarityCommon, Category: "香草", GrowthRate: 1.5},
	{ID: "mint", Name: "薄荷", NameEn: "Mint", Rarity: RarityCommon, Category: "香草", GrowthRate: 1.6},
	{ID: "rosemary", Name: "迷迭香", NameEn: "Rosemary", Rarity: RarityCommon, Category: "香草", GrowthRate: 0.9},
	{ID: "thyme", Name: "百里香", NameEn: "Thyme", Rarity: RarityCommon, Category: "香草", GrowthRate: 1.0},
	{ID: "lavender", Name: "薰衣草", NameEn: "Lavender", Rarity: RarityCommon, Category: "香草", GrowthRate: 1.1},
	{ID: "tomato", Name: "小番茄", NameEn: "Cherry Tomato", Rarity: RarityCommon, Category: "蔬菜", GrowthRate: 1.4},
	{ID: "lettuce", Name: "生菜", NameEn: "Lettuce", Rarity: RarityCommon, Category: "蔬菜", GrowthRate: 1.3},
	{ID: "radish", Name: "樱桃萝卜", NameEn: "Radish", Rarity: RarityCommon, Category: "蔬菜", GrowthRate: 1.8},
	{ID: "sunflower", Name: "向日葵", NameEn: "Sunflower", Rarity: RarityCommon, Category: "花卉", GrowthRate: 1.5},
	{ID: "marigold", Name: "万寿菊", NameEn: "Marigold", Rarity: RarityCommon, Category: "花卉", GrowthRate: 1.2},

	// ---- Rare ----
	{ID: "lithops", Name: "生石花", NameEn: "Lithops", Rarity: RarityRare, Category: "多肉", GrowthRate: 0.5},
	{ID: "adenium", Name: "沙漠玫瑰", NameEn: "Adenium", Rarity: RarityRare, Category: "多肉", GrowthRate: 0.7},
	{ID: "euphorbia_obesa", Name: "布纹球", NameEn: "Euphorbia Obesa", Rarity: RarityRare, Category: "多肉", GrowthRate: 0.6},
	{ID: "alocasia", Name: "海芋", NameEn: "Alocasia", Rarity: RarityRare, Category: "观叶", GrowthRate: 1.0},
	{ID: "calathea", Name: "竹芋", NameEn: "Calathea", Rarity: RarityRare, Category: "观叶", GrowthRate: 0.9},
	{ID: "anthurium", Name: "红掌", NameEn: "Anthurium", Rarity: RarityRare, Category: "观叶", GrowthRate: 1.1},
	{ID: "philodendron", Name: "喜林芋", NameEn: "Philodendron", Rarity: RarityRare, Category: "观叶", GrowthRate: 1.2},
	{ID: "orchid", Name: "兰花", NameEn: "Orchid", Rarity: RarityRare, Category: "花卉", GrowthRate: 0.8},
	{ID: "rose", Name: "玫瑰", NameEn: "Rose", Rarity: RarityRare, Category: "花卉", GrowthRate: 1.0},
	{ID: "carnation", Name: "康乃馨", NameEn: "Carnation", Rarity: RarityRare, Category: "花卉", GrowthRate: 1.1},
	{ID: "bonsai_pine", Name: "松树盆景", NameEn: "Pine Bonsai", Rarity: RarityRare, Category: "盆景", GrowthRate: 0.5},
	{ID: "bonsai_maple", Name: "红枫盆景", NameEn: "Maple Bonsai", Rarity: RarityRare, Category: "盆景", GrowthRate: 0.7},

	// ---- Epic ----
	{ID: "monstera_albo", Name: "白斑龟背竹", NameEn: "Monstera Albo", Rarity: RarityEpic, Category: "观叶", GrowthRate: 0.8},
	{ID: "philodendron_pink", Name: "粉红公主", NameEn: "Pink Princess", Rarity: RarityEpic, Category: "观叶", GrowthRate: 0.7},
	{ID: "variegated_aloe", Name: "锦化芦荟", NameEn: "Variegated Aloe", Rarity: RarityEpic, Category: "多肉", GrowthRate: 0.6},
	{ID: "conophytum", Name: "肉锥花", NameEn: "Conophytum", Rarity: RarityEpic, Category: "多肉", GrowthRate: 0.4},
	{ID: "aeonium_black", Name: "黑法师", NameEn: "Black Aeonium", Rarity: RarityEpic, Category: "多肉", GrowthRate: 0.6},
	{ID: "bonsai_wisteria", Name: "紫藤盆景", NameEn: "Wisteria Bonsai", Rarity: RarityEpic, Category: "盆景", GrowthRate: 0.5},
	{ID: "bonsai_cherry", Name: "樱花盆景", NameEn: "Cherry Blossom Bonsai", Rarity: RarityEpic, Category: "盆景", GrowthRate: 0.6},
	{ID: "blue_rose", Name: "蓝玫瑰", NameEn: "Blue Rose", Rarity: RarityEpic, Category: "花卉", GrowthRate: 0.7},
}

// SpeciesByID 按 ID 查种，找不到返回 nil
func SpeciesByID(id string) *PlantSpecies {
	for i := range Species {
		if Species[i].ID == id {
			return &Species[i]
		}
	}
	return nil
}

// SpeciesByRarity 按稀有度筛选
func SpeciesByRarity(r Rarity) []PlantSpecies {
	out := make([]PlantSpecies, 0)
	for _, s := range Species {
		if s.Rarity == r {
			out = append(out, s)
		}
	}
	return out
}
