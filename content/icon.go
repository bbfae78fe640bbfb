package content

// Icon identifies a renderable graphic symbol by name. The set is closed:
// content data may only reference these identifiers, and the frontend maps
// each one to a concrete asset. Unknown identifiers resolve to IconNone,
// which renders nothing.
type Icon string

const (
	IconNone       Icon = ""
	IconLeaf       Icon = "leaf"
	IconShield     Icon = "shield"
	IconSprout     Icon = "sprout"
	IconUsers      Icon = "users"
	IconHeart      Icon = "heart"
	IconHandshake  Icon = "handshake"
	IconTrendingUp Icon = "trending-up"
	IconFileCheck  Icon = "file-check"
	IconMaximize   Icon = "maximize"
	IconDroplets   Icon = "droplets"
	IconMapPin     Icon = "map-pin"
	IconTrees      Icon = "trees"
	IconTreePine   Icon = "tree-pine"
	IconCoffee     Icon = "coffee"
	IconHome       Icon = "home"
	IconWaves      Icon = "waves"
	IconGamepad    Icon = "gamepad"
	IconTrophy     Icon = "trophy"
	IconBaby       Icon = "baby"
	IconFootprints Icon = "footprints"
	IconFlame      Icon = "flame"
)

var knownIcons = map[Icon]bool{
	IconLeaf: true, IconShield: true, IconSprout: true, IconUsers: true,
	IconHeart: true, IconHandshake: true, IconTrendingUp: true,
	IconFileCheck: true, IconMaximize: true, IconDroplets: true,
	IconMapPin: true, IconTrees: true, IconTreePine: true, IconCoffee: true,
	IconHome: true, IconWaves: true, IconGamepad: true, IconTrophy: true,
	IconBaby: true, IconFootprints: true, IconFlame: true,
}

// ResolveIcon returns the icon unchanged when it belongs to the known set
// and IconNone otherwise. Content served over the API passes through this
// so a typo in a data entry degrades to "no icon" instead of a broken
// runtime lookup.
func ResolveIcon(name Icon) Icon {
	if knownIcons[name] {
		return name
	}
	return IconNone
}
