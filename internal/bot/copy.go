package bot

// footer signs every interactive menu.
const footer = "AIySha by roboMUA"

const (
	greetingBody = "Hello, there! I’m AIySha, your dedicated beauty ally. My mission is to elevate your beauty routine and ensure you feel extraordinary. How may I enhance your allure today? ✨"

	productRecsBody = "How thrilling to embrace your adventurous spirit! Let’s channel that energy into creating a stunning visage that reflects your inner creativity. I’m here to guide you every step of the way. Tell me, what vision do you have for your transformative look today? 🎨✨"

	faceBody = "Indeed, true beauty resonates from within, yet there’s always room to highlight your natural allure with the right products. Allow me to assist you in selecting the perfect items to accentuate your complexion. Could you share which feature of your face you’d like to enhance first? 🌟"

	cheeksBody = "Your desire for glamour shines through, and rest assured, I’m here to support your vision. Whether you’re leaning towards a subtle, natural elegance or aiming for the dramatic flair of a diva, I’m at your service. What are your aspirations for today’s look? ✨"

	bodyBody = "Ah, the beauty sovereign graces us with her presence! Are you prepared to enchant the world with your splendid visage? Share with me, what sort of enchantment shall we conjure up for your look today? ✨"

	tryOnBody = "Fantastic! We’re about to embark on a transformative journey with a touch of digital enchantment. Tell me, what ambiance are you aiming to capture with your new look? 🌟✨"

	hairBody = "Marvelous choice! Elevating your look with a fresh hair color or style can be truly transformative. Are you envisioning a bold new shade to make a statement, or perhaps a chic cut to redefine your style? Share your inspiration, and let’s craft a look that’s uniquely you. 🌈✨"

	lipsBody = "Absolutely, let’s revitalize your beauty routine! For lips that make a statement, are you feeling the boldness of a fiery red, or perhaps the understated elegance of a nude shade? Remember, a good lipliner is your ally—it ensures your lipstick stays precisely where it should. Ready to define your look? 💄✨"

	styleTryOnBody = "Navigating to the hair salon, it’s time to redefine your look! Shall we go bold with a daring pixie cut, embrace the romance of flowing mermaid waves, or perhaps choose a hue that embodies ‘rockstar’ vibes? Together, we’ll craft an experience that elevates your hair to new heights of style! 💇‍♀️🎨🤘"

	yesPleaseBody = "You’re truly in the spirit of transformation! With our virtual beauty wand at the ready, what new look or style would you like to bring to life? Let’s create some beauty magic together! 🪄✨"

	noThanksBody = "Absolutely! Don’t forget to snag our app for:\n" +
		"`iOS` ```@ https://apps.apple.com/us/app/robomua/id6443639738```\n" +
		"`Android` ```@ https://play.google.com/store/apps/details?id=com.domainname.roboMUANEW```\n" +
		"It’s like having a genie in your pocket – minus the three-wish limit. I’m just a text away, ready to grant your digital wishes. Catch you on the flip side! 😄🧞‍♂️✨"

	brandPickBody = "I’m delighted to hear of your interest in exploring options tailored to your skin tone. To provide you with the most suitable recommendations, could you please select one of the following esteemed brands? Each offers a range of products designed to complement and enhance your unique beauty. 🌟"

	vtoBrandBody = "Envision yourself in a boutique of beauty, surrounded by the finest brands, each offering a delightful selection to satisfy your style cravings. Which one captures your heart and transports you to a realm of fashion enchantment? 🍭👗✨"

	vtoShadeBody = "Selecting the perfect shade is akin to donning a superhero’s cape—each color holds its own power and story. So, which hue will be your superpower today? Will it be a bold, confident red or perhaps a mysterious, deep blue? Let’s find the color that makes you feel invincible! 🦸‍♂️🌈"

	followUpBody = "Your radiance was truly captivating! As the curtain rises on the next chapter of your style journey, can I assist in crafting your upcoming show-stopping look? 🌟🎭✨"

	selfieBody = "Great! Now, I need to see your beautiful face in all its glory.\n" +
		"For ```foundation, skin tint, concealer, setting powder, contour, bronzer:``` `Send SELFIE`\n" +
		"For ```hair style or hair color:``` `Send SELFIE with full hair visible`\n" +
		"For ```shapewear or nude shoes:``` `Snap Skin Patch`\n" +
		"Let’s make sure you find the right fit!\n" +
		"But make sure you’re not wearing any makeup or glasses. I want to see the real you, not the filtered version."

	pauseBody = "Hang tight! I’m whipping up some digital wizardry as we speak. It’s like a techy cauldron bubbling with bytes and bits – your wish is my command line. 🧙‍♂️💻✨"

	wrongTimeBody = "Oops, this photo came in at the wrong time. I can't work on this right now. Could you please send me another selfie after you tell me what product you're looking for? Or after you choose a VTO option? Pretty please?"

	staticFallbackBody = "Oops! I didn’t get that. Can you please rephrase your question? 🤔"
)
