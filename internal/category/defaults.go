/*
Copyright © 2025 changheonshin
*/
package category

// DefaultCategories returns the built-in category table. Order matters:
// when a label matches keywords from more than one category, the earlier
// entry wins.
func DefaultCategories() []Category {
	return []Category{
		{Name: "food", Keywords: []string{"food", "meal", "cooking", "restaurant", "kitchen", "drink", "beverage", "fruit", "vegetable"}},
		{Name: "people", Keywords: []string{"person", "people", "human", "child", "adult", "family", "portrait", "selfie"}},
		{Name: "animals", Keywords: []string{"animal", "pet", "dog", "cat", "bird", "wildlife", "zoo", "farm"}},
		{Name: "nature", Keywords: []string{"landscape", "mountain", "forest", "beach", "ocean", "sky", "sunset", "flower", "tree"}},
		{Name: "sports", Keywords: []string{"sport", "game", "football", "soccer", "basketball", "tennis", "running", "exercise"}},
		{Name: "vehicles", Keywords: []string{"car", "truck", "motorcycle", "bicycle", "plane", "train", "boat", "vehicle"}},
		{Name: "buildings", Keywords: []string{"building", "house", "architecture", "city", "street", "bridge", "monument"}},
		{Name: "art_design", Keywords: []string{"art", "painting", "drawing", "design", "craft", "handmade", "creative", "pattern"}},
		{Name: "technology", Keywords: []string{"computer", "phone", "device", "electronic", "gadget", "screen", "technology"}},
		{Name: "characters", Keywords: []string{"cartoon", "anime", "character", "mascot", "fictional", "comic", "animation"}},
	}
}
