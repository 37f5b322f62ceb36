package page

// activityArt — декоративные рисунки для известных кружков. Таблица только читается.
var activityArt = map[string]string{
	"Chess Club": `
   ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜
   ♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟
   · · · · · · · ·
   · · · · · · · ·
   · · · · · · · ·
   · · · · · · · ·
   ♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙
   ♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖`,
	"Drama Club": `
      .-"""-.
     /       \
     \       /
  .-'  .:::.  '-.
 '    .::::::.    '
'    :::::::::::   '
 '-.:::::::::::.-'
    '::::::::'
      ':::::'
        '::`,
	"Robotics Team": `
    ___
   |_|_|
   |_|_|      _____
   |_|_|   __|[_]|__
   |_|_|  |[] [] []|
 _.l___j__\      /
|___________\____/`,
	"Debate Society": `
    _______________
   /               \
  |  ⚖️  DEBATE  ⚖️  |
  |  Pro vs Con   |
   \_______________/
      |       |
     /         \`,
	"Environmental Club": `
      🌍
     /|\
    / | \
   🌱 🌳 🌻
  ♻️  ♻️  ♻️`,
	"Basketball Team": `
      ___
     /   \
    |  🏀 |
     \___/
      | |
     /   \
    |     |
   👟   👟`,
	"Photography Club": `
   ___________
  |  _______  |
  | |       | |
  | | 📷    | |
  | |_______| |
  |___________|
     |     |`,
	"Coding Club": `
   < CODE />
    ________
   /        \
  /  { }    \
 |   [ ]     |
 |   ( )     |
  \  ===    /
   \______/`,
}

// ArtFor возвращает рисунок для кружка или звёздную подпись с его именем.
func ArtFor(name string) string {
	if art, ok := activityArt[name]; ok {
		return art
	}
	return "\n    ⭐ " + name + " ⭐"
}
