package services

import (
	"fmt"
	"strings"

	"smartcloset/models"

	"google.golang.org/genai"
)

var recommendationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"itemIds": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"reasoning": {
			Type: genai.TypeString,
		},
	},
	Required: []string{"itemIds", "reasoning"},
}

func analyzePrompt(lang models.Language) string {
	return `Analyze this clothing image (or screenshot of product page).
If it is a screenshot, try to extract the brand, price, and material text.
Return a valid JSON object (NO markdown code blocks, just raw JSON) with:
- 'category' (Must be one of: Top, Bottom, Shoes, Outerwear, Accessory, Dress)
- 'color' (Use ` + lang.ColorName() + `)
- 'season' (Must be one of: Spring, Summer, Autumn, Winter, All Year)
- 'description' (A short, descriptive name in ` + lang.PromptName() + `)
- 'brand' (Brand name if visible or inferable, e.g. Uniqlo, Nike. else null)
- 'price' (Number only, if visible in screenshot. else null)
- 'material' (Fabric material if visible, e.g. "100% Cotton", "Denim". else null)
`
}

// dailyClosetSummary lists one item per line as
// "ID: {id} | {color} {season} {category} ({description})".
func dailyClosetSummary(closet []models.ClothingItem) string {
	lines := make([]string, 0, len(closet))
	for _, item := range closet {
		lines = append(lines, fmt.Sprintf("ID: %s | %s %s %s (%s)", item.ID, item.Color, item.Season, item.Category, item.Description))
	}
	return strings.Join(lines, "\n")
}

func dailyOutfitPrompt(closet []models.ClothingItem, weather models.WeatherSnapshot, lang models.Language) string {
	return fmt.Sprintf(`You are a trendy fashion blogger and professional stylist (Xiaohongshu/Instagram Style).
Language: %s.

Current Weather Details:
- Temp: %d°C, %s
- Precipitation Probability: %d%%
- UV Index: %d

Available Wardrobe:
%s

Suggest ONE detailed outfit combination from the available wardrobe.

TONE & STYLE GUIDELINES (Crucial):
1. Catchy Headline: Start with a short, punchy headline using keywords (e.g., "✨ Today's Look: #CozyVibes", "☕️ Sunday Brunch Fit").
2. Emotional & Scenario-based: Don't just list items. Describe the vibe (e.g., "Perfect for a chill coffee run", "Boss energy for that meeting").
3. Emojis: Use emojis liberally to make the text visually appealing and friendly.
4. Hashtags: End with 2-3 relevant hashtags (e.g., #OOTD #Minimalist #SummerVibes).
5. Readability (Important): Break text into short paragraphs (max 2 sentences per paragraph). Use double line breaks between paragraphs.

Weather Rules:
- If Rain > 40%%: Prefer boots/water-resistant shoes. Suggest an umbrella with a cute emoji.
- If UV > 6: Suggest sunglasses/hat.

Format Rules:
- Select 2-4 items (Top, Bottom, Shoes, etc).
- Do NOT use markdown formatting (asterisks, bolding). Keep it plain text.

Return a JSON object with:
- "itemIds": Array of strings.
- "reasoning": String (The influencer-style text).
`, lang.PromptName(), weather.Temp, weather.Condition, weather.Precipitation, weather.UVIndex, dailyClosetSummary(closet))
}

// askClosetSummary lists one item per line as "- {color} {description} (ID: {id})".
func askClosetSummary(closet []models.ClothingItem) string {
	lines := make([]string, 0, len(closet))
	for _, item := range closet {
		lines = append(lines, fmt.Sprintf("- %s %s (ID: %s)", item.Color, item.Description, item.ID))
	}
	return strings.Join(lines, "\n")
}

func askStylistPrompt(closet []models.ClothingItem, query string, lang models.Language) string {
	return fmt.Sprintf(`You are a popular fashion blogger and stylist (Xiaohongshu style).
User Query: %q
Language: %s.

Your Goal: Act as a "Digital Wardrobe Search Engine".
The user might ask for specific styles (e.g., "Liu Wen style", "Korean Minimalist", "Old Money") or specific items.

User's Wardrobe (SEARCH THIS LIST):
%s

Instructions:
1. Search & Match: Look through the wardrobe list. If the user mentions a style (e.g., "Korean"), identify items that fit that vibe (e.g., Trench coat, wide-leg jeans, solid shirts).
2. Simulate "Gallery Search": If the user asks for "Same style as [Celebrity]" or "Outfit ideas for [Occasion]", pretend you are searching their gallery and presenting the best matches from their existing clothes.
3. Tone: Enthusiastic, warm, professional. Use emojis ✨👗.
4. Structure: Break text into short paragraphs (max 2 sentences). Use double line breaks.

Output Rules:
- If you find matching items, explicitly mention them by name/color.
- If no exact match, suggest how to buy or what kind of item is missing to complete the look.
- Do NOT use markdown formatting like bold or italics. Use plain text only.
`, query, lang.PromptName(), askClosetSummary(closet))
}
